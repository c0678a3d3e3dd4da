package whatsapp

import (
	"net/url"
	"strings"
)

// OrderLink builds the wa.me deep link that opens a conversation with the
// store's contact number and the order message pre-filled.
func OrderLink(host, phone, message string) string {
	return strings.TrimRight(host, "/") + "/" + phone + "?text=" + url.QueryEscape(message)
}
