package service

import "go.uber.org/zap"

// Services bundles the core components over one shared repository.
type Services struct {
	Identity   *Identity
	Microposts *Microposts
	Graph      *Graph
	Feed       *Feed
}

func New(repo Repository, verifier CredentialVerifier, log *zap.Logger) *Services {
	return &Services{
		Identity:   NewIdentity(repo, verifier, log),
		Microposts: NewMicroposts(repo, log),
		Graph:      NewGraph(repo, repo, repo, log),
		Feed:       NewFeed(repo, repo, repo, log),
	}
}
