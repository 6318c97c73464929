package domain

// Permission grants a role the ability to perform actions over a resource
// scope. Action and Resource support a trailing "*" wildcard, so
// {Action: "equipment.*", Resource: "equipment/*"} covers every equipment
// operation on every item, and {Action: "*", Resource: "*"} is a full grant.
type Permission struct {
	ID       int64  `json:"id"`
	Role     Role   `json:"role"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
}
