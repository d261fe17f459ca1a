package providers

import (
	"wld/internal/github"
	"wld/internal/structures"
)

// NewGithubClient builds the API client from the configured credential.
// An empty token is allowed here; it fails with 401 on first use.
func NewGithubClient(conf *structures.Config) *github.Client {
	return github.NewClient(conf.Github.Token, conf.Github.APIBase)
}
