// internal/models/application.go
package models

import "time"

// Application statuses. The lifecycle is draft -> submitted; submitted is
// conventionally terminal but not guarded, and a save carrying
// status=draft moves a submitted record back to draft.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
)

// Application is the single per-user admission record. Sections is an
// open key/value bag merged shallowly on every save: the multi-step form
// enforces no server-side per-field schema, so new optional fields keep
// working without a model change.
//
// Recognized section keys mirror the intake form steps: source;
// fullName, gender, dob, nationality, aadhar, bloodGroup, motherTongue,
// community; address, city, state, pincode, studentMobile, studentEmail,
// parentMobile, parentEmail; fatherName, fatherOccupation, motherName,
// motherOccupation, guardianName; schoolName10, board10, percentage10,
// year10, schoolName12, board12, percentage12, year12; examName,
// examRoll, examScore, examRank; program, course, courseChoice2,
// courseChoice3; isFirstGraduate, isMinority; languagesKnown,
// achievements, emergencyContactName, emergencyContactNumber,
// emergencyRelation.
type Application struct {
	ID                string                 `json:"_id" bson:"_id"`
	UserID            string                 `json:"userId" bson:"userId"`
	ApplicationNumber string                 `json:"applicationNumber" bson:"applicationNumber"`
	Status            string                 `json:"status" bson:"status"`
	Sections          map[string]interface{} `json:"sections" bson:"sections"`
	CreatedAt         time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeStatus maps client status spellings onto the canonical enum.
// The original intake form sends "in_progress" (and older builds
// "in-progress") for draft saves. Unknown or empty values return "".
func NormalizeStatus(s string) string {
	switch s {
	case StatusDraft, "in_progress", "in-progress":
		return StatusDraft
	case StatusSubmitted:
		return StatusSubmitted
	default:
		return ""
	}
}

// MergeSections shallow-merges incoming into existing: incoming keys win,
// keys absent from incoming are retained. Neither input map is mutated.
func MergeSections(existing, incoming map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}
