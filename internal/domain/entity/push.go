package entity

// FailureClass classifies a per-token send failure reported by the provider.
type FailureClass string

const (
	FailureNone            FailureClass = ""
	FailureUnregistered    FailureClass = "unregistered"
	FailureInvalidArgument FailureClass = "invalid_argument"
	FailureQuotaExceeded   FailureClass = "quota_exceeded"
	FailureUnavailable     FailureClass = "unavailable"
	FailureInternal        FailureClass = "internal"
	FailureAuth            FailureClass = "auth"
	FailureUnknown         FailureClass = "unknown"
)

// InvalidatesToken reports whether the failure proves the token is dead.
func (c FailureClass) InvalidatesToken() bool {
	return c == FailureUnregistered || c == FailureInvalidArgument
}

// PushMessage is a provider-neutral multicast message.
type PushMessage struct {
	Tokens   []string
	Title    string
	Body     string
	ImageURL string
	Data     map[string]string

	// ClickAction is the Android intent action opened on tap.
	ClickAction string

	// Silent sends a data-only message with no visible notification.
	Silent bool
	// DryRun asks the provider to validate without delivering.
	DryRun bool
}

// SendOutcome is the provider's verdict for one token of a multicast.
type SendOutcome struct {
	Token     string
	Success   bool
	MessageID string
	Failure   FailureClass
	Err       error
}

// MulticastResult aggregates the per-token outcomes of one multicast call,
// in the same order as PushMessage.Tokens.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Outcomes     []SendOutcome
}

// InvalidTokens returns tokens whose failure proves they are dead.
func (r *MulticastResult) InvalidTokens() []string {
	if r == nil {
		return nil
	}

	tokens := make([]string, 0)
	for _, outcome := range r.Outcomes {
		if !outcome.Success && outcome.Failure.InvalidatesToken() {
			tokens = append(tokens, outcome.Token)
		}
	}

	return tokens
}

// FailedTokens returns every token that was not delivered, whatever the cause.
func (r *MulticastResult) FailedTokens() []string {
	if r == nil {
		return nil
	}

	tokens := make([]string, 0, r.FailureCount)
	for _, outcome := range r.Outcomes {
		if !outcome.Success {
			tokens = append(tokens, outcome.Token)
		}
	}

	return tokens
}

// LocalizedContent is the title/body pair for one language plus the shared image.
type LocalizedContent struct {
	Language string
	Title    string
	Body     string
	ImageURL string
}
