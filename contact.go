// contact.go - contact form fragments and submission
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/journey-portfolio/internal/config"
	"github.com/Zachkp/journey-portfolio/internal/contact"
)

// contactForm is the posted form. Field rules live in the contact service so
// a missing captcha token is reported before anything else.
type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
	Token   string `form:"g-recaptcha-response"`
}

// Pick the relay from RELAY, EmailJS unless told otherwise
func newContactService(cfg *config.Config) *contact.Service {
	var relay contact.Relay
	switch cfg.Relay {
	case "smtp":
		relay = &contact.SMTPRelay{
			Host: cfg.SMTP.Host,
			Port: cfg.SMTP.Port,
			User: cfg.SMTP.User,
			Pass: cfg.SMTP.Pass,
			To:   cfg.SMTP.To,
		}
	default:
		relay = &contact.EmailJSRelay{
			ServiceID:  cfg.EmailJS.ServiceID,
			TemplateID: cfg.EmailJS.TemplateID,
			PublicKey:  cfg.EmailJS.PublicKey,
			PrivateKey: cfg.EmailJS.PrivateKey,
		}
	}
	log.Printf("Contact relay: %s", cfg.Relay)
	return contact.NewService(contact.NewRecaptchaVerifier(cfg.Recaptcha.Secret), relay)
}

func setupContactRoutes(r *gin.Engine, cfg *config.Config, svc *contact.Service) {
	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title":   "Contact Me",
			"siteKey": cfg.Recaptcha.SiteKey,
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		var form contactForm
		if err := c.ShouldBind(&form); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": string(contact.StatusInvalid),
			})
			return
		}

		remoteIP := c.ClientIP()
		if doNotTrack(c) {
			remoteIP = ""
		}

		res := svc.Submit(c.Request.Context(), contact.Submission{
			Message: contact.Message{Name: form.Name, Email: form.Email, Message: form.Message},
			Token:   form.Token,
		}, remoteIP)

		if !res.OK {
			log.Printf("Contact submission from %s refused: %s", hashIP(c.ClientIP()), res.Status)
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": string(res.Status),
			})
			return
		}

		log.Printf("Contact submission from %s relayed", hashIP(c.ClientIP()))
		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": string(res.Status),
		})
	})
}
