package handlers

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the HTML views served for browser requests.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

// renderTable answers with the plain-text table by default, wraps it in HTML for
// browsers and sends payload instead when JSON is asked for.
func renderTable(c *gin.Context, status int, title, table string, payload interface{}) {
	switch c.NegotiateFormat(gin.MIMEPlain, gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEHTML:
		c.HTML(status, "table.html", gin.H{
			"Title": title,
			"Table": table,
		})
	case gin.MIMEJSON:
		c.JSON(status, payload)
	default:
		c.String(status, table)
	}
}
