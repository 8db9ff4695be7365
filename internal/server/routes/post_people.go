package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teskilat/backend/internal/db"
	"github.com/teskilat/backend/internal/server/middleware"
	"github.com/teskilat/backend/pkg/logger"
)

// createPersonBody mirrors the person columns. Every field is optional so
// partially-known or anonymous subjects can still be recorded.
type createPersonBody struct {
	FirstName      *string           `json:"firstName"`
	LastName       *string           `json:"lastName"`
	Aliases        []string          `json:"aliases"`
	DateOfBirth    *string           `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PlaceOfBirth   *string           `json:"placeOfBirth"`
	Nationality    *string           `json:"nationality"`
	Gender         *string           `json:"gender"`
	PhotoURL       *string           `json:"photoUrl"`
	Email          []string          `json:"email"`
	Phone          []string          `json:"phone"`
	Address        *string           `json:"address"`
	PassportNo     *string           `json:"passportNo"`
	NationalID     *string           `json:"nationalId"`
	TaxID          *string           `json:"taxId"`
	DriversLicense *string           `json:"driversLicense"`
	SocialMedia    map[string]string `json:"socialMedia"`
	Notes          *string           `json:"notes"`
	Tags           []string          `json:"tags"`
	RiskLevel      *string           `json:"riskLevel" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
}

// CreatePersonHandler creates a single person record.
func CreatePersonHandler(c echo.Context) error {
	body := new(createPersonBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	conn := c.(*middleware.AppContext).App.DBConn
	person, err := db.New(conn).CreatePerson(c.Request().Context(), db.CreatePersonParams{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		Aliases:        body.Aliases,
		DateOfBirth:    timestamp(body.DateOfBirth),
		PlaceOfBirth:   body.PlaceOfBirth,
		Nationality:    body.Nationality,
		Gender:         body.Gender,
		PhotoURL:       body.PhotoURL,
		Email:          body.Email,
		Phone:          body.Phone,
		Address:        body.Address,
		PassportNo:     body.PassportNo,
		NationalID:     body.NationalID,
		TaxID:          body.TaxID,
		DriversLicense: body.DriversLicense,
		SocialMedia:    body.SocialMedia,
		Notes:          body.Notes,
		Tags:           body.Tags,
		RiskLevel:      body.RiskLevel,
	})
	if err != nil {
		logger.Error("Failed to create person", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create person"})
	}

	return c.JSON(http.StatusCreated, map[string]any{"data": person})
}
