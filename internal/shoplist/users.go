package shoplist

// User is an entry of the simulated sign-in catalog. There is no real
// authentication; the current user is a client-side simulation.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AnonymousUserID encodes the "not signed in" selection.
const AnonymousUserID = 0

// Users is the fixed global catalog backing the simulated user switcher.
var Users = []User{
	{ID: 1, Name: "Alena"},
	{ID: 2, Name: "Petr"},
	{ID: 3, Name: "Katka"},
}

// UserByID looks a user up in the catalog.
func UserByID(id int) (User, bool) {
	for _, u := range Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
