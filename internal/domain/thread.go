package domain

import "time"

type Thread struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	OwnerID   string    `json:"ownerId"`
	VoteSets
	TotalComments int `json:"totalComments"`
}

type Owner struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     Owner     `json:"owner"`
	VoteSets
}

// ThreadDetail is a thread together with its comments, as loaded from the detail endpoint.
type ThreadDetail struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     Owner     `json:"owner"`
	VoteSets
	Comments []Comment `json:"comments"`
}

// NewThread is the input for creating a thread.
type NewThread struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category,omitempty"`
}

func (t Thread) Clone() Thread {
	t.VoteSets = t.VoteSets.Clone()
	return t
}

func (c Comment) Clone() Comment {
	c.VoteSets = c.VoteSets.Clone()
	return c
}

func (d ThreadDetail) Clone() ThreadDetail {
	d.VoteSets = d.VoteSets.Clone()
	comments := make([]Comment, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = c.Clone()
	}
	d.Comments = comments
	return d
}
