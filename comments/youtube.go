package comments

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

// pageSize is the CommentThreads API maximum per request.
const pageSize = 100

// YouTubeSource streams top-level comments from the YouTube Data API.
type YouTubeSource struct {
	service *youtube.Service
}

func NewYouTubeSource(ctx context.Context, apiKey string) (*YouTubeSource, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating YouTube client: %w", err)
	}
	return &YouTubeSource{service: service}, nil
}

func (s *YouTubeSource) Open(ctx context.Context, videoID string, sort SortMode) (Stream, error) {
	return &pageStream{
		service: s.service,
		videoID: videoID,
		order:   apiOrder(sort),
		first:   true,
	}, nil
}

func apiOrder(sort SortMode) string {
	if sort == SortNewest {
		return "time"
	}
	return "relevance"
}

// pageStream pulls comment pages on demand. A page is requested only
// when the buffer is empty and the consumer asks for more, so stopping
// early leaves the remaining pages unfetched.
type pageStream struct {
	service   *youtube.Service
	videoID   string
	order     string
	buffer    []*Comment
	pageToken string
	first     bool
}

func (p *pageStream) Next(ctx context.Context) (*Comment, error) {
	for len(p.buffer) == 0 {
		if !p.first && p.pageToken == "" {
			return nil, ErrStreamEnd
		}
		if err := p.fetchPage(ctx); err != nil {
			return nil, err
		}
	}

	comment := p.buffer[0]
	p.buffer = p.buffer[1:]
	return comment, nil
}

func (p *pageStream) fetchPage(ctx context.Context) error {
	call := p.service.CommentThreads.List([]string{"snippet"}).
		VideoId(p.videoID).
		Order(p.order).
		TextFormat("plainText").
		MaxResults(pageSize)
	if p.pageToken != "" {
		call = call.PageToken(p.pageToken)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return err
	}

	p.first = false
	p.pageToken = resp.NextPageToken

	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		snippet := item.Snippet.TopLevelComment.Snippet
		p.buffer = append(p.buffer, &Comment{
			Text:      snippet.TextDisplay,
			Author:    snippet.AuthorDisplayName,
			LikeCount: snippet.LikeCount,
		})
	}

	return nil
}
