package email

// Template is a string-based enum naming email templates. The set is
// fixed; Render answers ErrUnknownTemplate for anything else.
type Template string

const (
	// TemplateWelcome greets a newly registered league member.
	TemplateWelcome Template = "welcome"

	// TemplatePasswordReset carries a reset link minted by the auth
	// provider.
	TemplatePasswordReset Template = "password-reset"

	// Trial-expiry reminders at fixed days remaining.
	TemplateTrialEnding7 Template = "trial-ending-7"
	TemplateTrialEnding3 Template = "trial-ending-3"
	TemplateTrialEnding1 Template = "trial-ending-1"
)

// definition pairs a template's subject line with the body fragment
// rendered inside the shared HTML shell.
type definition struct {
	subject string
	heading string
	body    string
}

// definitions is the fixed template registry. Body fragments are
// html/template text; context values are referenced by key and the
// button helper produces the call-to-action anchor.
var definitions = map[Template]definition{
	TemplateWelcome: {
		subject: "Welcome to LeagueLink!",
		heading: "Welcome to LeagueLink{{with .name}}, {{.}}{{end}}!",
		body: `<p>Your league account is ready. Set up your player profile,
join a league, and start posting scores.</p>
{{if .link}}{{button .link "Open your dashboard"}}{{end}}`,
	},
	TemplatePasswordReset: {
		subject: "Reset your LeagueLink password",
		heading: "Reset your password",
		body: `<p>{{with .name}}Hi {{.}}, we{{else}}We{{end}} received a request
to reset your LeagueLink password. If this wasn't you, you can ignore
this email.</p>
{{if .link}}{{button .link "Reset password"}}{{end}}`,
	},
	TemplateTrialEnding7: {
		subject: "Your LeagueLink trial ends in 7 days",
		heading: "7 days left in your trial",
		body: `<p>{{with .name}}Hi {{.}}, your{{else}}Your{{end}} LeagueLink
trial ends in 7 days. Add a payment method to keep your league running
without interruption.</p>
{{if .link}}{{button .link "Manage billing"}}{{end}}`,
	},
	TemplateTrialEnding3: {
		subject: "Your LeagueLink trial ends in 3 days",
		heading: "3 days left in your trial",
		body: `<p>{{with .name}}Hi {{.}}, your{{else}}Your{{end}} LeagueLink
trial ends in 3 days. Add a payment method to keep your league running
without interruption.</p>
{{if .link}}{{button .link "Manage billing"}}{{end}}`,
	},
	TemplateTrialEnding1: {
		subject: "Your LeagueLink trial ends tomorrow",
		heading: "Last day of your trial",
		body: `<p>{{with .name}}Hi {{.}}, your{{else}}Your{{end}} LeagueLink
trial ends tomorrow. Add a payment method today so your league's
schedule and standings stay live.</p>
{{if .link}}{{button .link "Manage billing"}}{{end}}`,
	},
}
