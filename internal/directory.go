package internal

// IncludedCount is how many identities, from the top of the directory, make up
// the people filter.
const IncludedCount = 5

var allUsers = []Identity{
	{UserID: "user-1", Name: "Alice Johnson", Email: "alice@example.com", AvatarURL: "https://placehold.co/400x400/667eea/fff?text=A", Color: "#667eea"},
	{UserID: "user-2", Name: "Bob Smith", Email: "bob@example.com", AvatarURL: "https://placehold.co/400x400/764ba2/fff?text=B", Color: "#764ba2"},
	{UserID: "user-3", Name: "Charlie Brown", Email: "charlie@example.com", AvatarURL: "https://placehold.co/400x400/f093fb/fff?text=C", Color: "#f093fb"},
	{UserID: "user-4", Name: "Diana Prince", Email: "diana@example.com", AvatarURL: "https://placehold.co/400x400/4facfe/fff?text=D", Color: "#4facfe"},
	{UserID: "user-5", Name: "Ethan Hunt", Email: "ethan@example.com", AvatarURL: "https://placehold.co/400x400/43e97b/fff?text=E", Color: "#43e97b"},
	{UserID: "user-6", Name: "Fiona Gallagher", Email: "fiona@example.com", AvatarURL: "https://placehold.co/400x400/f5576c/fff?text=F", Color: "#f5576c"},
	{UserID: "user-7", Name: "George Lucas", Email: "george@example.com", AvatarURL: "https://placehold.co/400x400/feca57/fff?text=G", Color: "#feca57"},
	{UserID: "user-8", Name: "Hannah Montana", Email: "hannah@example.com", AvatarURL: "https://placehold.co/400x400/ff6b6b/fff?text=H", Color: "#ff6b6b"},
	{UserID: "user-9", Name: "Ivan Drago", Email: "ivan@example.com", AvatarURL: "https://placehold.co/400x400/a29bfe/fff?text=I", Color: "#a29bfe"},
	{UserID: "user-10", Name: "Julia Roberts", Email: "julia@example.com", AvatarURL: "https://placehold.co/400x400/fd79a8/fff?text=J", Color: "#fd79a8"},
}

// AllUsers returns every identity in directory order
func AllUsers() []Identity {
	out := make([]Identity, len(allUsers))
	copy(out, allUsers)
	return out
}

// IncludedUsers returns the identities the people filter keeps visible
func IncludedUsers() []Identity {
	out := make([]Identity, IncludedCount)
	copy(out, allUsers[:IncludedCount])
	return out
}

// IsIncluded reports whether userID belongs to the people filter
func IsIncluded(userID string) bool {
	for _, u := range allUsers[:IncludedCount] {
		if u.UserID == userID {
			return true
		}
	}
	return false
}

// FindUser looks up an identity by id
func FindUser(userID string) (Identity, bool) {
	for _, u := range allUsers {
		if u.UserID == userID {
			return u, true
		}
	}
	return Identity{}, false
}

// PeopleFilter builds the sidebar people filter for the included identities
func PeopleFilter() []PeopleFilterEntry {
	people := make([]PeopleFilterEntry, 0, IncludedCount)
	for _, u := range allUsers[:IncludedCount] {
		people = append(people, PeopleFilterEntry{
			UserID: u.UserID,
			Email:  u.Email,
			Name:   u.Name,
		})
	}
	return people
}
