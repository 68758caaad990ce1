package signup

import (
	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/rules"
)

// Field names double as form input names and submission value keys.
const (
	fieldName            = "name"
	fieldPassword        = "password"
	fieldPasswordConfirm = "password_confirm"
	fieldPlan            = "plan"
	fieldNewsletter      = "newsletter"
	fieldContactEmail    = "contact_email"
	fieldTerms           = "terms"
	fieldAvatar          = "avatar"
)

// contactNamespace nests the conditionally activated required error so it
// cannot collide with the email format error the field raises on its own.
const contactNamespace = "illuminatiError"

// planChoices are the plans the signup form offers. The first one is the
// preselected default.
var planChoices = []string{"free", "pro", "team"}

// Form bundles the signup field handles with the group that validates them.
// Handlers read and write through the typed handles; binders and validation
// passes work through Fields. Construct a fresh Form per request: fields and
// groups are single-goroutine state.
type Form struct {
	Name            *formkit.Field[string]
	Password        *formkit.Field[string]
	PasswordConfirm *formkit.Field[string]
	Plan            *formkit.Field[string]
	Newsletter      *formkit.Field[bool]
	ContactEmail    *formkit.Field[string]
	Terms           *formkit.Field[bool]

	// Fields is the validation group every handle above is attached to.
	Fields *formkit.Group
}

// NewForm builds the signup form. The contact email is required only while
// the newsletter checkbox is ticked, with the conditional error nested under
// its own namespace; toggling the checkbox re-validates the email
// synchronously. Editing the password re-checks its confirmation the same
// way.
func NewForm() *Form {
	f := &Form{}

	f.Name = formkit.NewField(fieldName, "",
		formkit.WithLabel[string]("Full name"),
		formkit.WithValidators(rules.NonEmpty(), rules.MaxLen(100)),
	)
	// bcrypt rejects passwords longer than 72 bytes.
	f.Password = formkit.NewField(fieldPassword, "",
		formkit.WithLabel[string]("Password"),
		formkit.WithValidators(rules.NonEmpty(), rules.MinLen(8), rules.MaxLen(72)),
	)
	f.PasswordConfirm = formkit.NewField(fieldPasswordConfirm, "",
		formkit.WithLabel[string]("Confirm password"),
		formkit.WithValidators(rules.MatchesField(f.Password)),
	)
	f.Plan = formkit.NewField(fieldPlan, planChoices[0],
		formkit.WithLabel[string]("Plan"),
		formkit.WithValidators(rules.OneOf(planChoices...)),
	)
	f.Newsletter = formkit.NewField(fieldNewsletter, false,
		formkit.WithLabel[bool]("Subscribe to the newsletter"),
	)
	f.ContactEmail = formkit.NewField(fieldContactEmail, "",
		formkit.WithLabel[string]("Contact email"),
		formkit.WithValidators(
			formkit.When(formkit.Truthy(f.Newsletter), rules.NonEmpty(), formkit.WithNamespace(contactNamespace)),
			rules.Email(),
		),
	)
	f.Terms = formkit.NewField(fieldTerms, false,
		formkit.WithLabel[bool]("Terms of service"),
		formkit.WithValidators(rules.Accepted()),
	)

	f.Fields = formkit.MustGroup(
		f.Name, f.Password, f.PasswordConfirm, f.Plan,
		f.Newsletter, f.ContactEmail, f.Terms,
	)

	if err := f.Fields.RevalidateOn(fieldNewsletter, fieldContactEmail); err != nil {
		panic(err)
	}
	if err := f.Fields.RevalidateOn(fieldPassword, fieldPasswordConfirm); err != nil {
		panic(err)
	}

	return f
}

// NewFormGroup builds a fresh signup field group. It matches the constructor
// shape handler.WrapForm and handler.LiveValidate expect.
func NewFormGroup() *formkit.Group {
	return NewForm().Fields
}
