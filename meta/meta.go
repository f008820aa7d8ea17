// meta/meta.go
package meta

// GO_ROUTINES defines the number of games played in parallel.
const GO_ROUTINES = 8

// SEARCH_DEPTH defines the default expectimax depth in plies.
const SEARCH_DEPTH = 3

// MAX_TURNS defines the number of turns before a game is called a draw.
const MAX_TURNS = 200

// REPETITION_LIMIT defines how often a position may occur before a draw.
const REPETITION_LIMIT = 3

// NUM_GAMES defines the number of games per matchup.
const NUM_GAMES = 20
