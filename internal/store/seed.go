package store

import (
	"time"

	"github.com/trektrust/trektrust-backend/internal/app/model"
)

// Reference catalogs seeded on first run. Treks and companies are static
// data in this system's scope; users never create or edit them.

func SeedTreks() []model.Trek {
	return []model.Trek{
		{
			ID:          "t1",
			Name:        "Roopkund Trek",
			Region:      "Uttarakhand",
			Difficulty:  model.DifficultyHard,
			Duration:    8,
			Description: "The famous skeleton lake trek offering views of Mt. Trishul and Nanda Ghunti.",
			ImageURL:    "https://picsum.photos/seed/roopkund/800/600",
		},
		{
			ID:          "t2",
			Name:        "Hampta Pass",
			Region:      "Himachal Pradesh",
			Difficulty:  model.DifficultyModerate,
			Duration:    5,
			Description: "A dramatic transition trek from green Kullu valley to the barren Spiti landscape.",
			ImageURL:    "https://picsum.photos/seed/hampta/800/600",
		},
		{
			ID:          "t3",
			Name:        "Sandakphu Phalut",
			Region:      "West Bengal",
			Difficulty:  model.DifficultyModerate,
			Duration:    6,
			Description: "Witness the Sleeping Buddha - Everest, Lhotse, Makalu, and Kanchenjunga.",
			ImageURL:    "https://picsum.photos/seed/sandakphu/800/600",
		},
		{
			ID:          "t4",
			Name:        "Valley of Flowers",
			Region:      "Uttarakhand",
			Difficulty:  model.DifficultyEasy,
			Duration:    4,
			Description: "A UNESCO World Heritage site known for its endemic alpine flowers and diverse flora.",
			ImageURL:    "https://picsum.photos/seed/vof/800/600",
		},
	}
}

func SeedCompanies() []model.Company {
	return []model.Company{
		{
			ID:          "c1",
			Name:        "IndiaHikes",
			Description: "Indias largest trekking community and organization.",
			Website:     "https://indiahikes.com",
			LogoURL:     "https://picsum.photos/seed/ih/200/200",
		},
		{
			ID:          "c2",
			Name:        "Trek The Himalayas",
			Description: "Premium trekking experiences with focus on safety and local culture.",
			Website:     "https://trekthehimalayas.com",
			LogoURL:     "https://picsum.photos/seed/tth/200/200",
		},
		{
			ID:          "c3",
			Name:        "Bikat Adventures",
			Description: "Learning-based trekking and mountaineering expeditions.",
			Website:     "https://bikatadventures.com",
			LogoURL:     "https://picsum.photos/seed/bikat/200/200",
		},
	}
}

// SeedAdmin is the simulated administrator identity used by the role-switch
// login.
func SeedAdmin() model.User {
	return model.User{
		ID:        "admin1",
		Name:      "System Admin",
		Email:     "admin@trektrust.in",
		Role:      model.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
}

// SeedHiker is the simulated regular-user identity.
func SeedHiker() model.User {
	return model.User{
		ID:        "user1",
		Name:      "Rahul Sharma",
		Email:     "rahul@example.com",
		Role:      model.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
}

// NewSeededSnapshot builds the first-run state: reference catalogs, empty
// verification and review collections, nobody logged in.
func NewSeededSnapshot() *model.Snapshot {
	return &model.Snapshot{
		SchemaVersion: model.SchemaVersion,
		CurrentUser:   nil,
		Treks:         SeedTreks(),
		Companies:     SeedCompanies(),
		Verifications: []model.Verification{},
		Reviews:       []model.Review{},
	}
}
