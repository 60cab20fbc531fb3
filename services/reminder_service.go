// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"halo-lounge-backend/models"
	"halo-lounge-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const reminderTemplate = "Hi [CustomerName], this is a reminder of your [ServiceName] appointment at Halo Hair Lounge tomorrow at [StartTime]. See you there!"

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Remind tomorrow's customers every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	// Sweep past appointments shortly after midnight
	c.AddFunc("15 0 * * *", s.CloseOutPastAppointments)

	c.Start()
	log.Println("Appointment scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var appointments []models.Appointment
	if err := s.db.Preload("Service").
		Where("date = ? AND status IN ?",
			tomorrow, []string{models.StatusPending, models.StatusConfirmed}).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		s.sendReminder(appointment)
	}

	log.Printf("Daily reminder processing completed, %d appointments", len(appointments))
}

func (s *ReminderService) sendReminder(appointment models.Appointment) {
	var user models.User
	if err := s.db.First(&user, "id = ?", appointment.UserID).Error; err != nil {
		log.Printf("Appointment %s: failed to load user: %v", appointment.ID, err)
		return
	}
	if user.Phone == "" {
		return
	}

	// Skip appointments already reminded
	var sent int64
	s.db.Model(&models.ReminderLog{}).
		Where("appointment_id = ? AND status = ?", appointment.ID, "sent").
		Count(&sent)
	if sent > 0 {
		return
	}

	message := strings.NewReplacer(
		"[CustomerName]", user.Name,
		"[ServiceName]", appointment.Service.Name,
		"[StartTime]", appointment.StartTime,
	).Replace(reminderTemplate)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(user.Phone, "+") {
		to = "whatsapp:" + user.Phone
		channel = "whatsapp"
	} else {
		to = user.Phone
	}

	// Send message via Twilio
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", user.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", user.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", user.Phone)
	}

	reminderLog := models.ReminderLog{
		AppointmentID: appointment.ID,
		UserID:        user.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appointment.ID, err)
	}
}

// CloseOutPastAppointments applies the administrative status sweep: past
// confirmed appointments are completed, past pending ones are marked as
// no-shows. Transitions go through the same table the API uses.
func (s *ReminderService) CloseOutPastAppointments() {
	today := utils.BeginningOfDay(time.Now())

	var stale []models.Appointment
	if err := s.db.Where("date < ? AND status IN ?",
		today, []string{models.StatusPending, models.StatusConfirmed}).
		Find(&stale).Error; err != nil {
		log.Printf("Failed to fetch past appointments: %v", err)
		return
	}

	for _, appointment := range stale {
		action := "no_show"
		if appointment.Status == models.StatusConfirmed {
			action = "complete"
		}
		if !models.ValidStatusTransition(action, appointment.Status) {
			continue
		}
		if err := s.db.Model(&appointment).
			Update("status", models.ActionStatus[action]).Error; err != nil {
			log.Printf("Failed to close out appointment %s: %v", appointment.ID, err)
		}
	}

	if len(stale) > 0 {
		log.Printf("Closed out %d past appointments", len(stale))
	}
}
