// meta/meta.go
package meta

// MAX_TURNS caps a game loop; a full game takes at most 52 card moves plus passes and flips.
const MAX_TURNS = 200

// GAMES is the default number of games of a simulation.
const GAMES = 100

// WORKERS is the default number of games simulated concurrently.
const WORKERS = 4

// UPDATE_BUFFER is the number of session updates kept for a slow reader.
const UPDATE_BUFFER = 64

// OUTPUT_DIR is where simulation records are written.
const OUTPUT_DIR = "experiments/out"
