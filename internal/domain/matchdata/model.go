package matchdata

const (
	DefaultMatchID     = "BBL2024-250101"
	DefaultDataDirName = "CricketData"

	// UserKeyParam is the query parameter carrying the API key.
	UserKeyParam = "userkey"
)

// DefaultEndpoints is the ordered set of per-match resources published by the stats API.
var DefaultEndpoints = []string{
	"scoreboard.json",
	"innings.json",
	"details.json",
	"players.json",
	"coaches.json",
	"currentbatsmen.json",
	"currentbowlers.json",
	"bowlingscorecards.json",
	"partnerships.json",
	"battingscorecards.json",
	"fallofwicket.json",
	"notes.json",
	"fullballbyball.json",
	"overbyover.json",
}

// Endpoints returns a copy of DefaultEndpoints.
func Endpoints() []string {
	out := make([]string, len(DefaultEndpoints))
	copy(out, DefaultEndpoints)
	return out
}

// Payload is one raw API response, kept verbatim.
type Payload struct {
	MatchID  string
	Endpoint string
	Body     string
}

// BuildURL joins the request URL by plain concatenation. baseURL must carry its own trailing slash.
func BuildURL(baseURL, matchID, endpoint, key string) string {
	return baseURL + matchID + "/" + endpoint + "?" + UserKeyParam + "=" + key
}
