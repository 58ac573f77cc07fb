package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"fairway/internal/models/response_models"
	"fairway/pkg/utils"
)

type PDFServiceInterface interface {
	BuildTripPlanPDF(plan *response_models.TripPlan) ([]byte, error)
}

type PDFService struct{}

func NewPDFService() PDFServiceInterface {
	return &PDFService{}
}

// BuildTripPlanPDF renders a plan as a printable one-pager and returns the
// raw bytes, no filesystem involved.
func (s *PDFService) BuildTripPlanPDF(plan *response_models.TripPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// header bar
	pdf.SetFillColor(15, 61, 34)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Fairway", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 196, 120)
	pdf.SetXY(20, 18)
	title := fmt.Sprintf("%d-Day Golf Trip to %s", len(plan.Days), plan.Destination)
	pdf.CellFormat(170, 6, title, "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(header string) {
		pdf.SetFillColor(15, 61, 34)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+header, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	for _, day := range plan.Days {
		sectionHeader(fmt.Sprintf("Day %d  (%s)", day.Day, day.Date))
		for _, activity := range day.Activities {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(100, 100, 100)
			pdf.CellFormat(30, 6, activity.Time, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.MultiCell(140, 6, activity.Description, "", "L", false)
		}
		pdf.Ln(3)
	}

	sectionHeader("Cost Breakdown")
	costRow := func(label string, amount int64) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(100, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(70, 6, utils.FormatCurrency(amount), "", 1, "R", false, 0, "")
	}
	costRow("Golf", plan.Costs.Golf)
	costRow("Lodging", plan.Costs.Hotel)
	costRow("Dining", plan.Costs.Restaurants)
	costRow("Experiences", plan.Costs.Experiences)
	costRow("Transportation", plan.Costs.Transportation)
	pdf.Ln(1)
	costRow("Total estimated cost", plan.TotalCost)

	if plan.Transportation != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		line := fmt.Sprintf("Vehicle rental (%s): pickup %s, dropoff %s",
			plan.Transportation.Type, plan.Transportation.PickupLocation, plan.Transportation.DropoffLocation)
		pdf.MultiCell(170, 5, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
