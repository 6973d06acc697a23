// meta/meta.go
package meta

// GO_ROUTINES defines the number of games played concurrently in experiments.
const GO_ROUTINES = 8

// SEARCH_DEPTH defines the plies searched by the advanced tier.
const SEARCH_DEPTH = 3

// MAX_TURNS caps the length of a self-play game.
const MAX_TURNS = 300

// NUM_GAMES defines the games played per tier matchup.
const NUM_GAMES = 10
