package vision

// Request is a single prompt, optionally with one image attached.
type Request struct {
	Prompt string
	// Image holds raw image bytes; nil sends a text-only message.
	Image []byte
	// ImageMIME is the media type used for the data URL. Defaults to image/jpeg.
	ImageMIME string
	// Detail is the vision fidelity hint ("low", "high", "auto").
	Detail      string
	MaxTokens   int
	Temperature float32
}

// chatRequest is the payload for POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

// contentPart is either a text part or an image_url part.
type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// chatResponse is the minimal subset of a non-streaming completion.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}
