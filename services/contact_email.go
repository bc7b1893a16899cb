package services

import (
	"fmt"
	"html"
	"strings"
)

// ContactEmail renders the subject and HTML body of a contact-form inquiry.
// Caller-supplied strings are escaped before interpolation.
func ContactEmail(name, email, phone, projectType, message string) (subject, body string) {
	if phone == "" {
		phone = "No proporcionado"
	}

	subject = fmt.Sprintf("Nueva Consulta: %s - %s", projectType, name)

	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #18181b; border-bottom: 2px solid #18181b; padding-bottom: 10px;">Nueva Consulta de Proyecto</h2>`)
	b.WriteString(`<div style="margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #52525b; margin-bottom: 5px;">Información del Cliente</h3>`)
	fmt.Fprintf(&b, `<p><strong>Nombre:</strong> %s</p>`, html.EscapeString(name))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, html.EscapeString(email))
	fmt.Fprintf(&b, `<p><strong>Teléfono:</strong> %s</p>`, html.EscapeString(phone))
	fmt.Fprintf(&b, `<p><strong>Tipo de Proyecto:</strong> %s</p>`, html.EscapeString(projectType))
	b.WriteString(`</div>`)
	b.WriteString(`<div style="margin: 20px 0;">`)
	b.WriteString(`<h3 style="color: #52525b; margin-bottom: 5px;">Mensaje</h3>`)
	fmt.Fprintf(&b, `<div style="background: #f4f4f5; padding: 15px; border-radius: 8px; white-space: pre-wrap;">%s</div>`, html.EscapeString(message))
	b.WriteString(`</div>`)
	b.WriteString(`<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e4e4e7; color: #71717a; font-size: 12px;">`)
	b.WriteString(`<p>Este mensaje fue enviado desde el formulario de contacto del sitio web.</p>`)
	b.WriteString(`<p>Responde directamente a este email para contactar al cliente.</p>`)
	b.WriteString(`</div></div>`)

	return subject, b.String()
}
