package ports

// Notifier is the user-facing notification and navigation collaborator.
// The core never formats messages itself; it reports the situation and
// the adapter decides how to show it.
type Notifier interface {
	// TransientError reports a network or backend failure that leaves
	// the current view untouched.
	TransientError(err error)
	// LoginRequired reports a forced logout: the refresh credential is
	// no longer accepted and the user must authenticate again.
	LoginRequired()
	// ConfirmDeletion asks the user to confirm a destructive action and
	// reports whether they did.
	ConfirmDeletion(subject string) (bool, error)
}
