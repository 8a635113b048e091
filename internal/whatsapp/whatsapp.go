// Package whatsapp builds the outbound contact links for an order's
// phone number.
package whatsapp

import "net/url"

// Opener attempts to open a link in the messaging application;
// returning an error means the target could not be resolved.
type Opener func(link string) error

// AppLink is the deep link handled by the installed application.
func AppLink(phone string) string {
	return "https://api.whatsapp.com/send?phone=" + url.QueryEscape(phone)
}

// WebLink is the browser fallback for when the app is unavailable.
func WebLink(phone string) string {
	return "https://wa.me/" + url.PathEscape(phone)
}

// Contact opens the chat for the phone number, preferring the app
// link and falling back to the web form. The returned link is the one
// that was ultimately opened.
func Contact(phone string, open Opener) (string, error) {
	link := AppLink(phone)
	if err := open(link); err == nil {
		return link, nil
	}

	link = WebLink(phone)
	if err := open(link); err != nil {
		return "", err
	}
	return link, nil
}
