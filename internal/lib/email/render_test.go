package email_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leaguelink/backend/internal/lib/email"
)

func TestRenderWelcome(t *testing.T) {
	subject, html, err := email.Render(email.TemplateWelcome, map[string]string{
		"name": "Jordan",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.Contains(t, html, "Jordan")
	assert.Contains(t, html, "<html")
}

func TestRenderPasswordResetIncludesLink(t *testing.T) {
	link := "https://leaguelink.app/reset-password?token=abc123"

	_, html, err := email.Render(email.TemplatePasswordReset, map[string]string{
		"name": "Sam",
		"link": link,
	})

	require.NoError(t, err)
	assert.Contains(t, html, link)
}

func TestRenderEscapesData(t *testing.T) {
	_, html, err := email.Render(email.TemplateWelcome, map[string]string{
		"name": "<script>alert(1)</script>",
	})

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderTrialEndingVariants(t *testing.T) {
	for _, tmpl := range []email.Template{
		email.TemplateTrialEnding7,
		email.TemplateTrialEnding3,
		email.TemplateTrialEnding1,
	} {
		t.Run(string(tmpl), func(t *testing.T) {
			subject, html, err := email.Render(tmpl, map[string]string{
				"name": "Casey",
				"link": "https://leaguelink.app/billing",
			})

			require.NoError(t, err)
			assert.NotEmpty(t, subject)
			assert.NotEmpty(t, html)
		})
	}
}

func TestRenderIsPure(t *testing.T) {
	data := map[string]string{
		"name": "Jordan",
		"link": "https://leaguelink.app/billing",
	}

	subject1, html1, err := email.Render(email.TemplateTrialEnding7, data)
	require.NoError(t, err)

	subject2, html2, err := email.Render(email.TemplateTrialEnding7, data)
	require.NoError(t, err)

	assert.Equal(t, subject1, subject2)
	assert.Equal(t, html1, html2)
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := email.Render(email.Template("does-not-exist"), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, email.ErrUnknownTemplate)
}

func TestRenderNilData(t *testing.T) {
	subject, html, err := email.Render(email.TemplateWelcome, nil)

	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.False(t, strings.Contains(html, "<no value>"))
}
