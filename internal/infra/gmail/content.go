package gmail

import (
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	"foundmoney/internal/domain/entity"

	"golang.org/x/net/html"
	"google.golang.org/api/gmail/v1"
)

func toEmailMessage(msg *gmail.Message, maxChars int) *entity.EmailMessage {
	out := &entity.EmailMessage{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
	}
	if msg.InternalDate > 0 {
		out.ReceivedAt = time.UnixMilli(msg.InternalDate).UTC()
	}
	if msg.Payload == nil {
		return out
	}

	for _, header := range msg.Payload.Headers {
		switch strings.ToLower(header.Name) {
		case "subject":
			out.Subject = header.Value
		case "from":
			out.From = header.Value
		}
	}

	var plain, rich []string
	collectBodies(msg.Payload, &plain, &rich)

	body := strings.Join(plain, " ")
	if strings.TrimSpace(body) == "" {
		stripped := make([]string, 0, len(rich))
		for _, part := range rich {
			stripped = append(stripped, stripHTML(part))
		}
		body = strings.Join(stripped, " ")
	}
	out.Body = truncate(collapseSpace(body), maxChars)

	return out
}

// collectBodies walks the MIME tree; non-text parts are ignored.
func collectBodies(part *gmail.MessagePart, plain, rich *[]string) {
	if part == nil {
		return
	}
	if part.Body != nil && part.Body.Data != "" {
		if decoded, ok := decodeBody(part.Body.Data); ok {
			switch {
			case strings.HasPrefix(part.MimeType, "text/html"):
				*rich = append(*rich, decoded)
			case strings.HasPrefix(part.MimeType, "text/"), part.MimeType == "":
				*plain = append(*plain, decoded)
			}
		}
	}
	for _, child := range part.Parts {
		collectBodies(child, plain, rich)
	}
}

func decodeBody(data string) (string, bool) {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
		if err != nil {
			return "", false
		}
	}

	return string(decoded), true
}

// stripHTML returns the visible text of an HTML document.
func stripHTML(doc string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(doc))

	var b strings.Builder
	skipDepth := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken:
			if name, _ := tokenizer.TagName(); isHiddenTag(name) {
				skipDepth++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			if name, _ := tokenizer.TagName(); isHiddenTag(name) && skipDepth > 0 {
				skipDepth--
			}
			b.WriteByte(' ')
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

func isHiddenTag(name []byte) bool {
	switch string(name) {
	case "script", "style", "head", "title":
		return true
	default:
		return false
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most limit runes; limit <= 0 keeps everything.
func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}
