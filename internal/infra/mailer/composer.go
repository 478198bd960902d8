package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"braceria-backend/internal/domain/reservation"
	"braceria-backend/internal/domain/schedule"
	"braceria-backend/internal/pkg/config"
	"braceria-backend/internal/pkg/errs"
	"braceria-backend/internal/usecase/notify"
)

//go:embed templates/*.html
var templateFS embed.FS

const displayDateLayout = "02/01/2006"

type TemplateComposer struct {
	templates      *template.Template
	restaurantName string
	restaurantMail string
	publicBaseURL  string
}

func NewTemplateComposer(cfg config.RestaurantConfig) (*TemplateComposer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse email templates")
	}
	return &TemplateComposer{
		templates:      tmpl,
		restaurantName: cfg.Name,
		restaurantMail: strings.TrimSpace(cfg.Email),
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

type emailData struct {
	ID          int64
	Restaurant  string
	FirstName   string
	LastName    string
	Phone       string
	Email       string
	Date        string
	Time        string
	Guests      int
	Profiling   bool
	Promotional bool
	CancelURL   string
}

// CancelURL builds the link served by the cancellation endpoint.
func (c *TemplateComposer) CancelURL(id int64, token string) string {
	return fmt.Sprintf("%s/api/braceria/annulla/%d/%s", c.publicBaseURL, id, url.PathEscape(token))
}

func (c *TemplateComposer) CustomerConfirmation(r *reservation.Reservation) (notify.Message, error) {
	data := c.fromReservation(r)
	data.CancelURL = c.CancelURL(r.ID(), r.CancelToken().String())

	html, err := c.render("customer_confirmation.html", data)
	if err != nil {
		return notify.Message{}, err
	}
	return notify.Message{
		Kind:    notify.KindCustomerConfirmation,
		To:      r.Email().String(),
		ReplyTo: c.restaurantMail,
		Subject: fmt.Sprintf("%s - prenotazione confermata per il %s alle %s", c.restaurantName, data.Date, data.Time),
		HTML:    html,
		Text: fmt.Sprintf("Ciao %s,\nla tua prenotazione n. %d per %d persone il %s alle %s è confermata.\nPer annullarla: %s\n",
			data.FirstName, data.ID, data.Guests, data.Date, data.Time, data.CancelURL),
	}, nil
}

func (c *TemplateComposer) RestaurantAlert(r *reservation.Reservation) (notify.Message, error) {
	if c.restaurantMail == "" {
		return notify.Message{}, notify.ErrNoRecipient
	}
	data := c.fromReservation(r)

	html, err := c.render("restaurant_alert.html", data)
	if err != nil {
		return notify.Message{}, err
	}
	return notify.Message{
		Kind:    notify.KindRestaurantAlert,
		To:      c.restaurantMail,
		ReplyTo: data.Email,
		Subject: fmt.Sprintf("Nuova prenotazione: %s %s, %s %s, %d persone", data.FirstName, data.LastName, data.Date, data.Time, data.Guests),
		HTML:    html,
		Text: fmt.Sprintf("Prenotazione n. %d\n%s %s\nTel: %s\nEmail: %s\n%s alle %s, %d persone\n",
			data.ID, data.FirstName, data.LastName, data.Phone, data.Email, data.Date, data.Time, data.Guests),
	}, nil
}

func (c *TemplateComposer) CancellationAlert(cancelled *reservation.Cancelled) (notify.Message, error) {
	if c.restaurantMail == "" {
		return notify.Message{}, notify.ErrNoRecipient
	}
	data := emailData{
		ID:         cancelled.ID,
		Restaurant: c.restaurantName,
		FirstName:  cancelled.FirstName,
		LastName:   cancelled.LastName,
		Phone:      cancelled.Phone,
		Email:      cancelled.Email,
		Date:       displayDate(cancelled.Date),
		Time:       cancelled.Time.HHMM(),
		Guests:     cancelled.Guests,
	}

	html, err := c.render("cancellation_alert.html", data)
	if err != nil {
		return notify.Message{}, err
	}
	return notify.Message{
		Kind:    notify.KindCancellationAlert,
		To:      c.restaurantMail,
		Subject: fmt.Sprintf("Prenotazione annullata: %s %s, %s %s", data.FirstName, data.LastName, data.Date, data.Time),
		HTML:    html,
		Text: fmt.Sprintf("La prenotazione n. %d di %s %s (%s alle %s, %d persone) è stata annullata.\n",
			data.ID, data.FirstName, data.LastName, data.Date, data.Time, data.Guests),
	}, nil
}

func (c *TemplateComposer) fromReservation(r *reservation.Reservation) emailData {
	return emailData{
		ID:          r.ID(),
		Restaurant:  c.restaurantName,
		FirstName:   r.FirstName(),
		LastName:    r.LastName(),
		Phone:       r.PhoneNumber(),
		Email:       r.Email().String(),
		Date:        displayDate(r.Date()),
		Time:        r.Time().HHMM(),
		Guests:      r.Guests().Value(),
		Profiling:   r.Consents().Profiling,
		Promotional: r.Consents().Promotional,
	}
}

func (c *TemplateComposer) render(name string, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := c.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errs.Wrap(err, "failed to render "+name)
	}
	return buf.String(), nil
}

func displayDate(d schedule.Date) string {
	return d.Time().Format(displayDateLayout)
}
