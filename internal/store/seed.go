// internal/store/seed.go
package store

import (
	"time"

	"github.com/google/uuid"

	"admissions-backend/internal/models"
)

// Default marketing content, written into an empty substrate on first
// use so the public site renders before anyone has touched a CMS.

func seedSiteSettings() *models.SiteSettings {
	s := &models.SiteSettings{
		Name:      "Sasurie Institute of Technology",
		ShortName: "SIT",
		Tagline:   "Innovate. Inspire. Impact.",
	}
	s.Logo.Light = "/assets/logos/sit-light.svg"
	s.Logo.Dark = "/assets/logos/sit-dark.svg"
	s.Logo.Favicon = "/assets/logos/favicon.png"
	s.HeroMedia.Type = "video"
	s.HeroMedia.URL = "https://cdn.example.com/media/campus-tour.mp4"
	s.HeroMedia.Poster = "https://cdn.example.com/media/campus-tour-poster.jpg"
	s.Colors.Primary = "#6428C7"
	s.Colors.Secondary = "#FFB703"
	s.Colors.Accent = "#19B8A2"
	s.Colors.Gradient = "linear-gradient(135deg, #6428C7 0%, #19B8A2 100%)"
	s.Contact.Email = "admissions@sasurie.edu"
	s.Contact.Phone = "+91 98765 43210"
	s.Contact.WhatsApp = "+91 98765 41230"
	s.Contact.Address = "Vijayamangalam, Tiruppur - 638056, Tamil Nadu, India"
	s.Contact.MapEmbedURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3912..."
	s.SocialLinks.Facebook = "https://facebook.com/sasurieengineering"
	s.SocialLinks.Instagram = "https://instagram.com/sasurieengineering"
	s.SocialLinks.LinkedIn = "https://linkedin.com/school/sasurie"
	s.SocialLinks.YouTube = "https://youtube.com/@sasurieengineering"
	s.PaymentGateway.Provider = "pending"
	s.PaymentGateway.Enabled = false
	s.PaymentGateway.StatusMessage = "Payment gateway integration will be available soon."
	return s
}

func seedPrograms() []models.Program {
	return []models.Program{
		{
			ID:          uuid.NewString(),
			Title:       "Computer Science and Engineering",
			Code:        "CSE",
			Degree:      "B.E.",
			Duration:    "4 Years",
			Category:    "undergraduate",
			Description: "AI-driven curriculum with research labs, hackathons, and product incubation support.",
			Highlights: []string{
				"AI + ML specialization tracks",
				"IBM & AWS Center of Excellence",
				"100% internship guarantee",
			},
			Intake:        180,
			BrochureURL:   "https://cdn.example.com/brochures/cse.pdf",
			Accreditation: []string{"AICTE", "NAAC A+"},
			HeroImage:     "https://cdn.example.com/images/programs/cse.jpg",
		},
		{
			ID:          uuid.NewString(),
			Title:       "Master of Business Administration",
			Code:        "MBA",
			Degree:      "MBA",
			Duration:    "2 Years",
			Category:    "postgraduate",
			Description: "Industry-focused MBA with dual specialization and global immersion program.",
			Highlights: []string{
				"Harvard Business Publishing curriculum partner",
				"FinTech & Analytics lab",
				"Career mentorship by CXOs",
			},
			Intake:        120,
			BrochureURL:   "https://cdn.example.com/brochures/mba.pdf",
			Accreditation: []string{"AICTE"},
			HeroImage:     "https://cdn.example.com/images/programs/mba.jpg",
		},
	}
}

func seedStats() []models.StatMetric {
	return []models.StatMetric{
		{ID: uuid.NewString(), Label: "Years of Excellence", Value: 24},
		{ID: uuid.NewString(), Label: "Recruiters", Value: 350, Suffix: "+", Highlight: true},
		{ID: uuid.NewString(), Label: "Acre Campus", Value: 45},
		{ID: uuid.NewString(), Label: "Students Placed", Value: 8500, Suffix: "+"},
	}
}

func seedEvents() []models.EventItem {
	now := time.Now().UTC().Format(time.RFC3339)
	return []models.EventItem{
		{
			ID:       uuid.NewString(),
			Title:    "YUVA 2K25 Innovation Summit",
			Category: "event",
			Date:     now,
			Location: "Main Auditorium",
			Excerpt:  "48-hour prototype challenge with industry mentors across AI, EV, and MedTech tracks.",
			CTALabel: "Register",
			CTAURL:   "https://sasurie.edu/events/yuva",
		},
		{
			ID:       uuid.NewString(),
			Title:    "Admissions 2025 Orientation Webinar",
			Category: "announcement",
			Date:     now,
			Location: "Virtual",
			Excerpt:  "Get clarity on eligibility, scholarships, and hostel facilities with the admissions team.",
			CTALabel: "Join Webinar",
			CTAURL:   "https://sasurie.edu/webinar/admissions",
		},
	}
}

func seedTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			ID:       uuid.NewString(),
			Name:     "Dhanya Krishnan",
			Role:     "Software Engineer, Zoho",
			Avatar:   "https://cdn.example.com/avatars/dhanya.png",
			Quote:    "The mentorship and research exposure I received at Sasurie helped me ace product interviews with confidence.",
			Category: "placement",
		},
		{
			ID:       uuid.NewString(),
			Name:     "Arjun Balaji",
			Role:     "Parent of ECE 2023",
			Avatar:   "https://cdn.example.com/avatars/arjun.png",
			Quote:    "Transparent communication and personalised academic support made my son's journey stress-free.",
			Category: "testimonial",
		},
	}
}
