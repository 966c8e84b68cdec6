// cmd/seed/main.go
//
// スキルカタログの投入コマンド。名前をキーに既存レコードを
// スキップするため、何度実行しても安全です。
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillscape/internal/config"
	"skillscape/internal/model"
	"skillscape/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	created, skipped := 0, 0
	for _, skill := range skillCatalog() {
		var existing model.Skill
		err := db.Where("name = ?", skill.Name).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("Error checking existing skill", slog.String("name", skill.Name), slog.Any("error", err))
			os.Exit(1)
		}

		skill.SkillID = uuid.New()
		skill.IsActive = true
		if err := db.Create(&skill).Error; err != nil {
			slog.Error("Error creating skill", slog.String("name", skill.Name), slog.Any("error", err))
			os.Exit(1)
		}
		created++
	}

	slog.Info("Skill catalog seeded", slog.Int("created", created), slog.Int("skipped", skipped))
}

func skillCatalog() []model.Skill {
	return []model.Skill{
		// Physical
		{
			Name:        "Running",
			Description: "Track your running and cardio sessions",
			Icon:        "🏃",
			Category:    "Physical",
			XPRate:      15,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Couch to 5K Program", URL: "https://www.youtube.com/@couchto5k"},
				{Type: "youtube", Title: "Running Form Tips", URL: "https://www.youtube.com/results?search_query=proper+running+form"},
				{Type: "app", Title: "Strava - Track Your Runs", URL: "https://www.strava.com"},
			},
		},
		{
			Name:        "Strength Training",
			Description: "Weight lifting and resistance training",
			Icon:        "💪",
			Category:    "Physical",
			XPRate:      15,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Jeff Nippard - Science-Based Training", URL: "https://www.youtube.com/@JeffNippard"},
				{Type: "youtube", Title: "AthleanX", URL: "https://www.youtube.com/@athleanx"},
				{Type: "website", Title: "StrongLifts 5x5", URL: "https://stronglifts.com"},
			},
		},
		{
			Name:        "Yoga",
			Description: "Practice yoga and flexibility",
			Icon:        "🧘",
			Category:    "Physical",
			XPRate:      12,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Yoga With Adriene", URL: "https://www.youtube.com/@yogawithadriene"},
				{Type: "youtube", Title: "Breathe and Flow", URL: "https://www.youtube.com/@BreatheAndFlow"},
				{Type: "app", Title: "Down Dog Yoga App", URL: "https://www.downdogapp.com"},
			},
		},
		{
			Name:        "Swimming",
			Description: "Swimming and water activities",
			Icon:        "🏊",
			Category:    "Physical",
			XPRate:      14,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Swim Like A Pro", URL: "https://www.youtube.com/results?search_query=swim+technique"},
				{Type: "website", Title: "SwimSmooth", URL: "https://www.swimsmooth.com"},
			},
		},

		// Creative
		{
			Name:        "Guitar",
			Description: "Learn and practice guitar",
			Icon:        "🎸",
			Category:    "Creative",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Justin Guitar - Free Lessons", URL: "https://www.youtube.com/@JustinGuitarSongs"},
				{Type: "youtube", Title: "Marty Music", URL: "https://www.youtube.com/@MartyMusic"},
				{Type: "website", Title: "Ultimate Guitar Tabs", URL: "https://www.ultimate-guitar.com"},
			},
		},
		{
			Name:        "Piano",
			Description: "Piano practice and music theory",
			Icon:        "🎹",
			Category:    "Creative",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Piano With Jonny", URL: "https://www.youtube.com/@PianoWithJonny"},
				{Type: "website", Title: "Flowkey - Learn Piano", URL: "https://www.flowkey.com"},
				{Type: "youtube", Title: "Andrew Huang - Music Theory", URL: "https://www.youtube.com/@andrewhuang"},
			},
		},
		{
			Name:        "Drawing",
			Description: "Sketching, drawing, and visual arts",
			Icon:        "🎨",
			Category:    "Creative",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Proko - Drawing Fundamentals", URL: "https://www.youtube.com/@ProkoTV"},
				{Type: "website", Title: "Drawabox - Free Lessons", URL: "https://drawabox.com"},
				{Type: "youtube", Title: "Sinix Design", URL: "https://www.youtube.com/@sinixdesign"},
			},
		},
		{
			Name:        "Writing",
			Description: "Creative writing and journaling",
			Icon:        "✍️",
			Category:    "Creative",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Brandon Sanderson Lectures", URL: "https://www.youtube.com/results?search_query=brandon+sanderson+lectures"},
				{Type: "website", Title: "r/writing Community", URL: "https://www.reddit.com/r/writing"},
				{Type: "website", Title: "NaNoWriMo", URL: "https://nanowrimo.org"},
			},
		},
		{
			Name:        "Photography",
			Description: "Photography skills and editing",
			Icon:        "📷",
			Category:    "Creative",
			XPRate:      12,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Peter McKinnon", URL: "https://www.youtube.com/@PeterMcKinnon"},
				{Type: "youtube", Title: "Mango Street", URL: "https://www.youtube.com/@MangoStreet"},
				{Type: "website", Title: "r/photoclass", URL: "https://www.reddit.com/r/photoclass"},
			},
		},

		// Professional
		{
			Name:        "Programming",
			Description: "Coding and software development",
			Icon:        "💻",
			Category:    "Professional",
			XPRate:      12,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "freeCodeCamp", URL: "https://www.youtube.com/@freecodecamp"},
				{Type: "website", Title: "The Odin Project", URL: "https://www.theodinproject.com"},
				{Type: "website", Title: "LeetCode Practice", URL: "https://leetcode.com"},
				{Type: "youtube", Title: "Traversy Media", URL: "https://www.youtube.com/@TraversyMedia"},
			},
		},
		{
			Name:        "Design",
			Description: "UI/UX and graphic design",
			Icon:        "🎨",
			Category:    "Professional",
			XPRate:      12,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Figma Tutorial", URL: "https://www.youtube.com/results?search_query=figma+tutorial"},
				{Type: "website", Title: "Dribbble Inspiration", URL: "https://dribbble.com"},
				{Type: "website", Title: "Laws of UX", URL: "https://lawsofux.com"},
			},
		},
		{
			Name:        "Reading",
			Description: "Books, articles, and learning",
			Icon:        "📚",
			Category:    "Knowledge",
			XPRate:      8,
			Resources: []model.SkillResource{
				{Type: "website", Title: "Goodreads", URL: "https://www.goodreads.com"},
				{Type: "website", Title: "Blinkist Book Summaries", URL: "https://www.blinkist.com"},
				{Type: "website", Title: "Project Gutenberg - Free Books", URL: "https://www.gutenberg.org"},
			},
		},
		{
			Name:        "Business",
			Description: "Entrepreneurship and business skills",
			Icon:        "💼",
			Category:    "Professional",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Y Combinator Startup School", URL: "https://www.youtube.com/@ycombinator"},
				{Type: "website", Title: "Indie Hackers", URL: "https://www.indiehackers.com"},
				{Type: "youtube", Title: "Ali Abdaal Productivity", URL: "https://www.youtube.com/@aliabdaal"},
			},
		},

		// Language
		{
			Name:        "Spanish",
			Description: "Learning Spanish language",
			Icon:        "🇪🇸",
			Category:    "Language",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "app", Title: "Duolingo", URL: "https://www.duolingo.com"},
				{Type: "youtube", Title: "SpanishDict", URL: "https://www.youtube.com/@spanishdict"},
				{Type: "youtube", Title: "Dreaming Spanish", URL: "https://www.youtube.com/@DreamingSpanish"},
			},
		},
		{
			Name:        "French",
			Description: "Learning French language",
			Icon:        "🇫🇷",
			Category:    "Language",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "app", Title: "Duolingo French", URL: "https://www.duolingo.com/course/fr/en/Learn-French"},
				{Type: "youtube", Title: "Learn French with Alexa", URL: "https://www.youtube.com/@learnfrenchwithalexa"},
				{Type: "website", Title: "Coffee Break French Podcast", URL: "https://coffeebreaklanguages.com"},
			},
		},
		{
			Name:        "Japanese",
			Description: "Learning Japanese language",
			Icon:        "🇯🇵",
			Category:    "Language",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "website", Title: "WaniKani - Learn Kanji", URL: "https://www.wanikani.com"},
				{Type: "youtube", Title: "JapanesePod101", URL: "https://www.youtube.com/@JapanesePod101"},
				{Type: "app", Title: "HelloTalk Language Exchange", URL: "https://www.hellotalk.com"},
			},
		},

		// Life / Wellness
		{
			Name:        "Cooking",
			Description: "Culinary skills and recipes",
			Icon:        "🍳",
			Category:    "Life",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Binging with Babish", URL: "https://www.youtube.com/@bingingwithbabish"},
				{Type: "youtube", Title: "Joshua Weissman", URL: "https://www.youtube.com/@JoshuaWeissman"},
				{Type: "website", Title: "SeriousEats Recipes", URL: "https://www.seriouseats.com"},
			},
		},
		{
			Name:        "Meditation",
			Description: "Mindfulness and meditation practice",
			Icon:        "🧘",
			Category:    "Wellness",
			XPRate:      10,
			Resources: []model.SkillResource{
				{Type: "app", Title: "Headspace", URL: "https://www.headspace.com"},
				{Type: "youtube", Title: "Mindful Movement", URL: "https://www.youtube.com/@TheMindfulMovement"},
				{Type: "website", Title: "r/Meditation", URL: "https://www.reddit.com/r/Meditation"},
			},
		},
		{
			Name:        "Gardening",
			Description: "Growing plants and gardening",
			Icon:        "🌱",
			Category:    "Life",
			XPRate:      8,
			Resources: []model.SkillResource{
				{Type: "youtube", Title: "Epic Gardening", URL: "https://www.youtube.com/@epicgardening"},
				{Type: "youtube", Title: "MIgardener", URL: "https://www.youtube.com/@MIgardener"},
				{Type: "website", Title: "r/gardening", URL: "https://www.reddit.com/r/gardening"},
			},
		},
	}
}
