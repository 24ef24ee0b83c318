package mongo

import (
	"time"

	"github.com/fableworks/fable/pkg/domain"
)

// document is the stored shape of an adventure. Field names stay camelCase
// so collections written by earlier deployments remain readable.
type document struct {
	ID          string     `bson:"_id"`
	Title       string     `bson:"title"`
	Description string     `bson:"description"`
	Nodes       []nodeDoc  `bson:"nodes"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

type nodeDoc struct {
	ID       string      `bson:"id"`
	Title    string      `bson:"title"`
	Content  string      `bson:"content"`
	Choices  []choiceDoc `bson:"choices"`
	IsStart  bool        `bson:"isStart"`
	IsEnding bool        `bson:"isEnding"`
}

type choiceDoc struct {
	Text         string `bson:"text"`
	TargetNodeID string `bson:"targetNodeId"`
}

func fromDomain(adv *domain.Adventure) *document {
	doc := &document{
		ID:          adv.ID,
		Title:       adv.Title,
		Description: adv.Description,
		Nodes:       make([]nodeDoc, len(adv.Nodes)),
		CreatedAt:   adv.CreatedAt,
		UpdatedAt:   adv.UpdatedAt,
	}
	for i, n := range adv.Nodes {
		choices := make([]choiceDoc, len(n.Choices))
		for j, c := range n.Choices {
			choices[j] = choiceDoc(c)
		}
		doc.Nodes[i] = nodeDoc{
			ID:       n.ID,
			Title:    n.Title,
			Content:  n.Content,
			Choices:  choices,
			IsStart:  n.IsStart,
			IsEnding: n.IsEnding,
		}
	}
	return doc
}

func (d *document) toDomain() *domain.Adventure {
	adv := &domain.Adventure{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Nodes:       make([]domain.StoryNode, len(d.Nodes)),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	for i, n := range d.Nodes {
		choices := make([]domain.Choice, len(n.Choices))
		for j, c := range n.Choices {
			choices[j] = domain.Choice(c)
		}
		adv.Nodes[i] = domain.StoryNode{
			ID:       n.ID,
			Title:    n.Title,
			Content:  n.Content,
			Choices:  choices,
			IsStart:  n.IsStart,
			IsEnding: n.IsEnding,
		}
	}
	adv.Normalize()
	return adv
}
