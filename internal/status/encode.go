// internal/status/encode.go
package status

// Encode converts an Entry into the settings payload.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(e Entry) Payload {
	p := Payload{
		CustomStatus: CustomStatus{
			Text:      e.Text,
			EmojiName: e.EmojiName,
		},
	}

	if e.UseCustomEmoji {
		id := e.EmojiID
		p.CustomStatus.EmojiID = &id
	}

	if e.Activity == nil {
		return p
	}

	a := PayloadActivity{
		Type: e.Activity.Type,
		Name: e.Activity.Name,
	}
	if e.Activity.Type == ActivityStreaming {
		url := e.Activity.URL
		a.URL = &url
	}
	p.Activities = []PayloadActivity{a}

	return p
}
