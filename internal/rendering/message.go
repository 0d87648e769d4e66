// Package rendering produces the vendor invitation message for an RFP.
// Rendering is a pure function of the RFP snapshot: same input, same output.
package rendering

import (
	"strconv"
	"strings"

	"github.com/jonathan/rfp-manager/internal/types"
)

// DefaultSubjectTitle is used when an RFP has no title.
const DefaultSubjectTitle = "New Request for Proposal"

// missingValue stands in for any absent field in the message body.
const missingValue = "-"

// RenderInvitation renders the subject and plain-text body of the RFP
// invitation email shared by every recipient of a dispatch.
func RenderInvitation(rfp types.RFP) (subject, body string) {
	title := rfp.Title
	if title == "" {
		title = DefaultSubjectTitle
	}
	subject = "RFP: " + title

	var sb strings.Builder
	sb.WriteString("Hello,\n\n")
	sb.WriteString("You are invited to submit a proposal for the following RFP:\n\n")
	sb.WriteString("Title: " + orMissing(rfp.Title) + "\n\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString(renderRequirements(rfp.Requirements) + "\n\n")
	sb.WriteString("Budget: " + renderBudget(rfp.Budget) + "\n")
	sb.WriteString("Delivery Time: " + orMissingPtr(rfp.DeliveryTime) + "\n")
	sb.WriteString("Payment Terms: " + orMissingPtr(rfp.PaymentTerms) + "\n")
	sb.WriteString("Warranty: " + orMissingPtr(rfp.Warranty) + "\n\n")
	sb.WriteString("Please reply to this email with your detailed proposal, including pricing, delivery schedule, and terms.\n\n")
	sb.WriteString("Best regards,\nProcurement Team\n")

	return subject, sb.String()
}

// renderRequirements renders one "- " prefixed line per requirement, or a
// single "-" line when there are none.
func renderRequirements(requirements []string) string {
	if len(requirements) == 0 {
		return missingValue
	}
	lines := make([]string, len(requirements))
	for i, req := range requirements {
		lines[i] = "- " + req
	}
	return strings.Join(lines, "\n")
}

// renderBudget treats a zero budget as absent, matching the behavior the
// message contract was written against.
func renderBudget(budget *float64) string {
	if budget == nil || *budget == 0 {
		return missingValue
	}
	return strconv.FormatFloat(*budget, 'f', -1, 64)
}

func orMissing(value string) string {
	if value == "" {
		return missingValue
	}
	return value
}

func orMissingPtr(value *string) string {
	if value == nil || *value == "" {
		return missingValue
	}
	return *value
}
