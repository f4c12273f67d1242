package main

// Game configuration constants
const (
	MaxAttempts = 6 // Maximum number of attempts per daily puzzle
	WordLength  = 5 // Length of the secret word
)

// Verdict constants for per-letter feedback
const (
	VerdictCorrect = "correct"
	VerdictPresent = "present"
	VerdictAbsent  = "absent"
)

// Daily game variants, matching the storage layout daily/<variant>/<date>
const (
	VariantWordle   = "wordle"
	VariantSemantic = "semantic"
)

// Route constants
const (
	RouteCheck                 = "/api/daily/:variant/check"
	RouteDailyWord             = "/api/daily/:variant/word"
	RouteLeaderboard           = "/api/daily/:variant/leaderboard"
	RouteLeaderboardCumulative = "/api/daily/:variant/leaderboard/cumulative"
	RouteAdminReset            = "/api/admin/reset-leaderboards"
	RouteDevResetDaily         = "/api/dev/reset-daily"
	RouteDevSeedDaily          = "/api/dev/seed-daily"
	RouteHealthz               = "/healthz"
)

// Error message constants
const (
	ErrorInvalidDate     = "invalid or missing date, expected YYYY-MM-DD"
	ErrorInvalidGuess    = "guess must be exactly 5 letters"
	ErrorUnknownVariant  = "unknown game variant"
	ErrorFutureDate      = "only past dates allowed"
	ErrorStoreNotReady   = "word store not configured"
	ErrorStoreFailure    = "word store unavailable"
	ErrorUnauthorized    = "unauthorized"
	ErrorAdminDisabled   = "admin key not configured"
	ErrorDevOnly         = "dev only"
	ErrorMissingPlayerID = "playerId is required"
)

// fallbackWords is the deterministic pool used when no word has been
// persisted for a date. Order and contents are frozen: the day-index
// arithmetic maps every historical date onto this exact slice, so any
// reordering silently changes past answers.
var fallbackWords = []string{
	"chien", "magie", "brave", "solde", "fleur",
	"monde", "arbre", "poule", "table", "noire",
}

// seedWords is the pool the dev reset endpoint draws from when forcing
// a day's word. Never returned to clients.
var seedWords = []string{
	"nuage", "calme", "bulle", "pluie", "vague",
	"perle", "boire", "ombre", "fuite", "coude",
	"geste", "ferme", "douce", "comte", "bague",
	"pomme", "carte", "livre", "roule", "fonte",
}

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
