package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SelectionSingle = "single"
	SelectionMulti  = "multi"
)

// EntryPoint is a named trackable source (QR sticker, receipt link, ...)
// owned exclusively by BusinessConfig.EntryPoints.
type EntryPoint struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Src   string `json:"src"`
}

type FeedbackQuestion struct {
	Id      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Mode    string   `json:"mode"` // "single" | "multi"
	Options []string `json:"options"`
}

type Theme struct {
	Brand string `json:"brand"`
	Page  string `json:"page"`
	Admin string `json:"admin"`
	Card  string `json:"card"`
}

// BusinessConfig is the singleton per deployment. Mutated only through the
// config service, which snapshots the prior value into the undo slot first.
type BusinessConfig struct {
	Id                uuid.UUID
	Name              string
	Slug              string
	MinStarThreshold  int
	GooglePlaceUrl    string
	RedirectUrl       string
	Theme             Theme
	EntryPoints       []EntryPoint
	FeedbackQuestions []FeedbackQuestion
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// DefaultBusinessConfig is the documented default dataset, seeded when the
// store is empty and served read-only when storage is unavailable.
func DefaultBusinessConfig() *BusinessConfig {
	return &BusinessConfig{
		Id:               uuid.MustParse("6f1c2a9e-0000-4000-8000-000000000001"),
		Name:             "Demo Coffee Roasters",
		Slug:             "demo-coffee",
		MinStarThreshold: 4,
		GooglePlaceUrl:   "https://search.google.com/local/writereview?placeid=demo",
		RedirectUrl:      "https://example.com",
		Theme: Theme{
			Brand: "#f59e0b",
			Page:  "#fffbeb",
			Admin: "#1e293b",
			Card:  "#ffffff",
		},
		EntryPoints: []EntryPoint{
			{Id: "ep-counter", Label: "Counter QR sticker", Src: "counter_qr"},
		},
		FeedbackQuestions: []FeedbackQuestion{
			{
				Id:      "q-what-went-wrong",
				Prompt:  "What went wrong?",
				Mode:    SelectionMulti,
				Options: []string{"Service", "Product quality", "Price", "Waiting time", "Cleanliness"},
			},
			{
				Id:      "q-return",
				Prompt:  "Would you give us another chance?",
				Mode:    SelectionSingle,
				Options: []string{"Yes", "Maybe", "No"},
			},
		},
		CreatedAt: time.Now(),
	}
}
