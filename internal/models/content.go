package models

type ProfileSection struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Profile struct {
	Name     string           `json:"name"`
	Role     string           `json:"role"`
	Position string           `json:"position"`
	Tagline  string           `json:"tagline"`
	PhotoURL string           `json:"photo_url"`
	Sections []ProfileSection `json:"sections"`
}

type Recommendation struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Quiz is the public view of a quiz; the correct answer is kept server-side.
type Quiz struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizAnswerRequest struct {
	Answer string `json:"answer"`
}

type QuizAnswerResponse struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`
}

type Poll struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
}

type PollSubmitRequest struct {
	Answer  string `json:"answer"`
	Comment string `json:"comment"`
}

// PollSubmitResponse carries the cleared form state back to the client.
type PollSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Answer  string `json:"answer"`
	Comment string `json:"comment"`
}
