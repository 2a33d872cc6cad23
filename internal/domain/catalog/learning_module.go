package catalog

import (
	"net/url"
	"strings"
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ResourceType classifies a supplementary learning resource
type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceEbook   ResourceType = "ebook"
	ResourceOther   ResourceType = "other"
)

// Resource is a supplementary link attached to a learning module
type Resource struct {
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Type  ResourceType `json:"type"`
}

// LearningModule represents a self-paced learning unit users can complete
type LearningModule struct {
	shared.BaseAggregateRoot
	Title         string
	Description   string
	Content       string
	EstimatedTime string
	Category      string
	Prerequisites []uuid.UUID
	Resources     []Resource
}

// NewLearningModule creates a new learning module
func NewLearningModule(title, description, content string) (*LearningModule, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Module title cannot be empty")
	}
	if len(title) > 200 {
		return nil, shared.NewDomainError("INVALID_TITLE", "Module title cannot exceed 200 characters")
	}
	if strings.TrimSpace(content) == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Module content cannot be empty")
	}

	return &LearningModule{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Description:       strings.TrimSpace(description),
		Content:           content,
		Prerequisites:     make([]uuid.UUID, 0),
		Resources:         make([]Resource, 0),
	}, nil
}

// SetCategory sets the module category
func (lm *LearningModule) SetCategory(category string) {
	lm.Category = strings.TrimSpace(category)
	lm.UpdatedAt = time.Now()
	lm.IncrementVersion()
}

// SetEstimatedTime sets the advisory completion time label, e.g. "4 hours"
func (lm *LearningModule) SetEstimatedTime(estimatedTime string) {
	lm.EstimatedTime = strings.TrimSpace(estimatedTime)
	lm.UpdatedAt = time.Now()
	lm.IncrementVersion()
}

// SetPrerequisites replaces the prerequisite module list
func (lm *LearningModule) SetPrerequisites(moduleIDs []uuid.UUID) error {
	for _, id := range moduleIDs {
		if id == uuid.Nil {
			return shared.NewDomainError("INVALID_PREREQUISITE", "Prerequisite module ID cannot be empty")
		}
		if id == lm.ID {
			return shared.NewDomainError("INVALID_PREREQUISITE", "Module cannot be its own prerequisite")
		}
	}

	lm.Prerequisites = moduleIDs
	lm.UpdatedAt = time.Now()
	lm.IncrementVersion()

	return nil
}

// AddResource appends a supplementary resource
func (lm *LearningModule) AddResource(resource Resource) error {
	if err := validateResource(resource); err != nil {
		return err
	}

	lm.Resources = append(lm.Resources, resource)
	lm.UpdatedAt = time.Now()
	lm.IncrementVersion()

	return nil
}

// SetResources replaces the resource list
func (lm *LearningModule) SetResources(resources []Resource) error {
	for _, r := range resources {
		if err := validateResource(r); err != nil {
			return err
		}
	}

	lm.Resources = resources
	lm.UpdatedAt = time.Now()
	lm.IncrementVersion()

	return nil
}

func validateResource(resource Resource) error {
	if strings.TrimSpace(resource.Title) == "" {
		return shared.NewDomainError("INVALID_RESOURCE", "Resource title cannot be empty")
	}
	parsed, err := url.Parse(resource.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return shared.NewDomainError("INVALID_RESOURCE", "Resource URL must be absolute")
	}
	switch resource.Type {
	case ResourceVideo, ResourceArticle, ResourceEbook, ResourceOther:
		return nil
	default:
		return shared.NewDomainError("INVALID_RESOURCE", "Resource type must be video, article, ebook or other")
	}
}
