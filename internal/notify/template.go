// internal/notify/template.go
package notify

import (
	"fmt"
	"html/template"
	"strings"

	"admissions-backend/internal/models"
)

// EmailSubject is the fixed subject line for submission confirmations.
const EmailSubject = "Application Submitted Successfully - Sasurie College of Engineering"

// summaryData is the flattened view of an application rendered into the
// confirmation email. Missing form fields show as "N/A" rather than
// blank rows.
type summaryData struct {
	ApplicantName     string
	ApplicationNumber string

	FullName    string
	Gender      string
	DOB         string
	Nationality string
	BloodGroup  string

	Email   string
	Mobile  string
	Address string

	Percentage10 string
	Percentage12 string
	Board12      string

	FirstChoice  string
	SecondChoice string
	ThirdChoice  string
}

func sectionValue(sections map[string]interface{}, key string) string {
	v, ok := sections[key]
	if !ok || v == nil {
		return "N/A"
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return "N/A"
	}
	return s
}

// buildSummaryData lifts the section bag into the template view. The
// applicant's registered name is the greeting fallback when the form's
// own fullName has not been filled in yet.
func buildSummaryData(applicant *models.User, app *models.Application) summaryData {
	sections := app.Sections
	name := sectionValue(sections, "fullName")
	if name == "N/A" && applicant != nil {
		name = applicant.FullName
	}

	address := sectionValue(sections, "address")
	city := sectionValue(sections, "city")
	state := sectionValue(sections, "state")
	pincode := sectionValue(sections, "pincode")
	fullAddress := fmt.Sprintf("%s, %s, %s - %s", address, city, state, pincode)

	return summaryData{
		ApplicantName:     name,
		ApplicationNumber: app.ApplicationNumber,
		FullName:          sectionValue(sections, "fullName"),
		Gender:            sectionValue(sections, "gender"),
		DOB:               sectionValue(sections, "dob"),
		Nationality:       sectionValue(sections, "nationality"),
		BloodGroup:        sectionValue(sections, "bloodGroup"),
		Email:             sectionValue(sections, "studentEmail"),
		Mobile:            sectionValue(sections, "studentMobile"),
		Address:           fullAddress,
		Percentage10:      sectionValue(sections, "percentage10"),
		Percentage12:      sectionValue(sections, "percentage12"),
		Board12:           sectionValue(sections, "board12"),
		FirstChoice:       sectionValue(sections, "course"),
		SecondChoice:      sectionValue(sections, "courseChoice2"),
		ThirdChoice:       sectionValue(sections, "courseChoice3"),
	}
}

// RenderSummaryHTML produces the confirmation email body for a
// submitted application.
func RenderSummaryHTML(applicant *models.User, app *models.Application) (string, error) {
	var sb strings.Builder
	if err := summaryTemplate.Execute(&sb, buildSummaryData(applicant, app)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderSummaryText produces the short plain-text variant used for the
// SMS channel and as the text/plain email part.
func RenderSummaryText(applicant *models.User, app *models.Application) string {
	data := buildSummaryData(applicant, app)
	return fmt.Sprintf(
		"Dear %s, your application %s to Sasurie College of Engineering has been submitted successfully and is under review.",
		data.ApplicantName, data.ApplicationNumber,
	)
}

var summaryTemplate = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
    .container { background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
    .header { background: linear-gradient(135deg, #991b1b 0%, #7f1d1d 100%); color: #ffffff; padding: 20px; border-radius: 8px 8px 0 0; margin: -30px -30px 30px -30px; text-align: center; }
    .header h1 { margin: 0; font-size: 24px; color: #fbbf24; }
    .header p { margin: 10px 0 0 0; font-size: 14px; }
    .success-badge { background-color: #10b981; color: white; padding: 8px 16px; border-radius: 20px; display: inline-block; margin: 15px 0; font-weight: bold; }
    .section { margin-bottom: 25px; border-bottom: 1px solid #e5e7eb; padding-bottom: 20px; }
    .section:last-child { border-bottom: none; }
    .section-title { color: #991b1b; font-size: 18px; font-weight: bold; margin-bottom: 15px; border-left: 4px solid #fbbf24; padding-left: 12px; }
    .info-row { display: flex; margin-bottom: 10px; }
    .info-label { font-weight: 600; color: #64748b; min-width: 200px; }
    .info-value { color: #0f172a; }
    .footer { margin-top: 30px; padding-top: 20px; border-top: 2px solid #fbbf24; text-align: center; color: #64748b; font-size: 14px; }
    .important-note { background-color: #fef3c7; border-left: 4px solid #fbbf24; padding: 15px; margin: 20px 0; border-radius: 4px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Sasurie College of Engineering</h1>
      <p>Admission Application Confirmation</p>
      <div class="success-badge">Application Submitted Successfully</div>
    </div>

    <p>Dear <strong>{{.ApplicantName}}</strong>,</p>
    <p>Thank you for submitting your application to Sasurie College of Engineering. We have successfully received your application and it is now under review.</p>
    <p>Your application number is <strong>{{.ApplicationNumber}}</strong>.</p>

    <div class="important-note">
      <strong>Important:</strong> Please keep this email for your records. Your application details are summarized below.
    </div>

    <div class="section">
      <div class="section-title">Personal Information</div>
      <div class="info-row"><div class="info-label">Full Name:</div><div class="info-value">{{.FullName}}</div></div>
      <div class="info-row"><div class="info-label">Gender:</div><div class="info-value">{{.Gender}}</div></div>
      <div class="info-row"><div class="info-label">Date of Birth:</div><div class="info-value">{{.DOB}}</div></div>
      <div class="info-row"><div class="info-label">Nationality:</div><div class="info-value">{{.Nationality}}</div></div>
      <div class="info-row"><div class="info-label">Blood Group:</div><div class="info-value">{{.BloodGroup}}</div></div>
    </div>

    <div class="section">
      <div class="section-title">Contact Information</div>
      <div class="info-row"><div class="info-label">Email:</div><div class="info-value">{{.Email}}</div></div>
      <div class="info-row"><div class="info-label">Mobile:</div><div class="info-value">{{.Mobile}}</div></div>
      <div class="info-row"><div class="info-label">Address:</div><div class="info-value">{{.Address}}</div></div>
    </div>

    <div class="section">
      <div class="section-title">Academic Information</div>
      <div class="info-row"><div class="info-label">10th Percentage:</div><div class="info-value">{{.Percentage10}}%</div></div>
      <div class="info-row"><div class="info-label">12th Percentage:</div><div class="info-value">{{.Percentage12}}%</div></div>
      <div class="info-row"><div class="info-label">12th Board:</div><div class="info-value">{{.Board12}}</div></div>
    </div>

    <div class="section">
      <div class="section-title">Course Preferences</div>
      <div class="info-row"><div class="info-label">First Preference:</div><div class="info-value">{{.FirstChoice}}</div></div>
      <div class="info-row"><div class="info-label">Second Preference:</div><div class="info-value">{{.SecondChoice}}</div></div>
      <div class="info-row"><div class="info-label">Third Preference:</div><div class="info-value">{{.ThirdChoice}}</div></div>
    </div>

    <div class="important-note">
      <strong>Next Steps:</strong>
      <ul style="margin: 10px 0 0 0; padding-left: 20px;">
        <li>Our admissions team will review your application within 5-7 business days</li>
        <li>You will receive further communication via email regarding your application status</li>
        <li>Please check your email regularly for updates</li>
        <li>For any queries, contact us at admissions@sasurie.ac.in</li>
      </ul>
    </div>

    <div class="footer">
      <p><strong>Sasurie College of Engineering</strong></p>
      <p>Vijayamangalam, Tirupur - 638056, Tamil Nadu, India</p>
      <p>Phone: +91-4257-226666 | Email: admissions@sasurie.ac.in</p>
      <p style="margin-top: 15px; font-size: 12px; color: #94a3b8;">This is an automated email. Please do not reply to this message.</p>
    </div>
  </div>
</body>
</html>
`))
