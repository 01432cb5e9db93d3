package http

// ResponsePolicy captures where the two store variants intentionally diverge
// on the wire. The divergences are preserved as data instead of forked
// handlers.
type ResponsePolicy struct {
	// CreateAcceptsDone requires a done flag on the creation payload and
	// stores it. When false, created items always start with done=false.
	CreateAcceptsDone bool

	// UpdateReturnsItem responds to a successful update with the re-read item
	// body instead of a bare 200.
	UpdateReturnsItem bool

	// DeleteReportsMatch responds to delete with 200 and a boolean body
	// saying whether a row was removed, instead of distinguishing 404.
	DeleteReportsMatch bool
}

// DocumentPolicy is the document-store contract: forced done=false at
// creation, status-only update, 404 on deleting a missing item.
var DocumentPolicy = ResponsePolicy{}

// RelationalPolicy is the relational contract: caller-supplied done at
// creation, updated item in the update body, boolean delete outcome.
var RelationalPolicy = ResponsePolicy{
	CreateAcceptsDone:  true,
	UpdateReturnsItem:  true,
	DeleteReportsMatch: true,
}
