package whatsapp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	assert.Equal(t, "https://api.whatsapp.com/send?phone=%2B15550100", AppLink("+15550100"))
	assert.Equal(t, "https://wa.me/15550100", WebLink("15550100"))
}

func TestContact_PrefersAppLink(t *testing.T) {
	var opened []string
	open := func(link string) error {
		opened = append(opened, link)
		return nil
	}

	link, err := Contact("15550100", open)
	require.NoError(t, err)
	assert.Equal(t, AppLink("15550100"), link)
	assert.Equal(t, []string{AppLink("15550100")}, opened)
}

func TestContact_FallsBackToWeb(t *testing.T) {
	open := func(link string) error {
		if link == AppLink("15550100") {
			return errors.New("no handler")
		}
		return nil
	}

	link, err := Contact("15550100", open)
	require.NoError(t, err)
	assert.Equal(t, WebLink("15550100"), link)
}

func TestContact_NothingResolves(t *testing.T) {
	open := func(string) error { return errors.New("no handler") }

	_, err := Contact("15550100", open)
	assert.Error(t, err)
}
