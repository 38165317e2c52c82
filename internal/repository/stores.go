package repository

// Stores bundles the persistence backend chosen at startup. Either every
// field is the Postgres DAO or every field is the flat-file store; the two
// are never mixed.
type Stores struct {
	Events        EventStore
	Submissions   SubmissionStore
	Reviews       ReviewStore
	Registrations RegistrationStore
	Users         UserStore
}
