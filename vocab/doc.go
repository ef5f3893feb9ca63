// Package vocab selects which tokens are retained for embedding based on a
// global frequency threshold.
package vocab
