// internal/models/content.go
package models

// Static-ish marketing content served by the read-only endpoints. These
// mirror the seeded site content; the API never mutates them.

type SiteSettings struct {
	Name      string `json:"name" bson:"name"`
	ShortName string `json:"shortName" bson:"shortName"`
	Tagline   string `json:"tagline" bson:"tagline"`
	Logo      struct {
		Light   string `json:"light" bson:"light"`
		Dark    string `json:"dark" bson:"dark"`
		Favicon string `json:"favicon" bson:"favicon"`
	} `json:"logo" bson:"logo"`
	HeroMedia struct {
		Type   string `json:"type" bson:"type"` // "image" or "video"
		URL    string `json:"url" bson:"url"`
		Poster string `json:"poster,omitempty" bson:"poster,omitempty"`
	} `json:"heroMedia" bson:"heroMedia"`
	Colors struct {
		Primary   string `json:"primary" bson:"primary"`
		Secondary string `json:"secondary" bson:"secondary"`
		Accent    string `json:"accent" bson:"accent"`
		Gradient  string `json:"gradient" bson:"gradient"`
	} `json:"colors" bson:"colors"`
	Contact struct {
		Email       string `json:"email" bson:"email"`
		Phone       string `json:"phone" bson:"phone"`
		WhatsApp    string `json:"whatsapp" bson:"whatsapp"`
		Address     string `json:"address" bson:"address"`
		MapEmbedURL string `json:"mapEmbedUrl" bson:"mapEmbedUrl"`
	} `json:"contact" bson:"contact"`
	SocialLinks struct {
		Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
		Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
		Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
		LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
		YouTube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	} `json:"socialLinks" bson:"socialLinks"`
	PaymentGateway struct {
		Provider      string `json:"provider" bson:"provider"`
		Enabled       bool   `json:"enabled" bson:"enabled"`
		StatusMessage string `json:"statusMessage,omitempty" bson:"statusMessage,omitempty"`
	} `json:"paymentGateway" bson:"paymentGateway"`
}

type Program struct {
	ID            string   `json:"_id" bson:"_id"`
	Title         string   `json:"title" bson:"title"`
	Code          string   `json:"code" bson:"code"`
	Degree        string   `json:"degree" bson:"degree"`
	Duration      string   `json:"duration" bson:"duration"`
	Category      string   `json:"category" bson:"category"`
	Description   string   `json:"description" bson:"description"`
	Highlights    []string `json:"highlights" bson:"highlights"`
	Intake        int      `json:"intake" bson:"intake"`
	BrochureURL   string   `json:"brochureUrl,omitempty" bson:"brochureUrl,omitempty"`
	Accreditation []string `json:"accreditation" bson:"accreditation"`
	HeroImage     string   `json:"heroImage" bson:"heroImage"`
}

type StatMetric struct {
	ID        string `json:"_id" bson:"_id"`
	Label     string `json:"label" bson:"label"`
	Value     int    `json:"value" bson:"value"`
	Suffix    string `json:"suffix,omitempty" bson:"suffix,omitempty"`
	Highlight bool   `json:"highlight,omitempty" bson:"highlight,omitempty"`
}

type EventItem struct {
	ID       string `json:"_id" bson:"_id"`
	Title    string `json:"title" bson:"title"`
	Category string `json:"category" bson:"category"`
	Date     string `json:"date" bson:"date"`
	Location string `json:"location" bson:"location"`
	Excerpt  string `json:"excerpt" bson:"excerpt"`
	CTALabel string `json:"ctaLabel,omitempty" bson:"ctaLabel,omitempty"`
	CTAURL   string `json:"ctaUrl,omitempty" bson:"ctaUrl,omitempty"`
}

type Testimonial struct {
	ID       string `json:"_id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Role     string `json:"role" bson:"role"`
	Avatar   string `json:"avatar" bson:"avatar"`
	Quote    string `json:"quote" bson:"quote"`
	Category string `json:"category" bson:"category"`
}
