package service

import (
	"slices"

	"github.com/hbfa/milestones/internal/contract"
	"github.com/hbfa/milestones/internal/domain"
)

type projectService struct{}

func NewProjectService() ProjectService {
	return projectService{}
}

func (projectService) Resolve(name string) contract.ProjectResolution {
	candidates := domain.ProjectAliasCandidates(name)
	if candidates == nil {
		candidates = []string{}
	}
	return contract.ProjectResolution{
		Input:      name,
		Canonical:  domain.CanonicalProjectID(name),
		Candidates: candidates,
	}
}

func (projectService) Options() []string {
	return slices.Clone(domain.ProjectOptions)
}
