// Package showcase holds the static content shown next to the calculator:
// the services on offer and the latest announcements.
package showcase

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Service is one card in the services section.
type Service struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Icon        string `json:"icon"`
}

// Announcement is one entry in the announcements list.
type Announcement struct {
	Title string        `json:"title"`
	Body  string        `json:"body"`
	Age   time.Duration `json:"-"`
}

// PostedAnnouncement is an Announcement with its age rendered for display.
type PostedAnnouncement struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Posted string `json:"posted"`
}

// Showcase is everything the services section renders.
type Showcase struct {
	Heading       string               `json:"heading"`
	Summary       string               `json:"summary"`
	Services      []Service            `json:"services"`
	Announcements []PostedAnnouncement `json:"announcements"`
}

var services = []Service{
	{
		Slug:        "micro-loans",
		Title:       "Micro Loans",
		Description: "Quick access to small loans starting from ₹0. Get approved in minutes with minimal documentation.",
		Path:        "/micro-loans",
		Icon:        "credit-card",
	},
	{
		Slug:        "grocery-delivery",
		Title:       "Grocery Delivery",
		Description: "Fresh groceries delivered to your doorstep within hours. Quality products at great prices.",
		Path:        "/grocery-delivery",
		Icon:        "shopping-bag",
	},
	{
		Slug:        "digital-subscriptions",
		Title:       "Digital Subscriptions",
		Description: "Access premium digital services at discounted rates. Bundle your favorite platforms and save more.",
		Path:        "/digital-subscriptions",
		Icon:        "music",
	},
}

var announcements = []Announcement{
	{
		Title: "New Feature Launch",
		Body:  "Zero minimum amount for micro loans now available!",
		Age:   2 * time.Hour,
	},
	{
		Title: "Special Offer",
		Body:  "Get 20% off on your first grocery delivery order",
		Age:   24 * time.Hour,
	},
	{
		Title: "Service Update",
		Body:  "Extended delivery hours now available in select areas",
		Age:   48 * time.Hour,
	},
}

// Services returns a copy of the service cards in display order.
func Services() []Service {
	return append([]Service(nil), services...)
}

// FindService looks a service up by slug.
func FindService(slug string) (Service, bool) {
	for _, service := range services {
		if service.Slug == slug {
			return service, true
		}
	}
	return Service{}, false
}

// Catalog renders the services section as of now.
func Catalog(now time.Time) Showcase {
	posted := make([]PostedAnnouncement, 0, len(announcements))
	for _, announcement := range announcements {
		posted = append(posted, PostedAnnouncement{
			Title:  announcement.Title,
			Body:   announcement.Body,
			Posted: humanize.RelTime(now.Add(-announcement.Age), now, "ago", "from now"),
		})
	}

	return Showcase{
		Heading:       "Our Services",
		Summary:       "LADDU provides three core services designed to make your life easier and more affordable.",
		Services:      Services(),
		Announcements: posted,
	}
}
