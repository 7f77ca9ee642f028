package youtube

import (
	"reflect"
	"testing"

	yt "google.golang.org/api/youtube/v3"
)

func TestChunkIDs(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		size int
		want [][]string
	}{
		{
			name: "empty",
			ids:  nil,
			size: 50,
			want: nil,
		},
		{
			name: "single partial chunk",
			ids:  []string{"a", "b", "c"},
			size: 50,
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "exact multiple",
			ids:  []string{"a", "b", "c", "d"},
			size: 2,
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "remainder chunk",
			ids:  []string{"a", "b", "c", "d", "e"},
			size: 2,
			want: [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkIDs(tt.ids, tt.size)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("chunkIDs(%v, %d) = %v, want %v", tt.ids, tt.size, got, tt.want)
			}
		})
	}
}

func TestRawVideoItemNilBlocks(t *testing.T) {
	// Videos can come back without statistics or contentDetails; the mapping
	// must not panic and must leave those fields empty.
	item := rawVideoItem(&yt.Video{Id: "vid123"})
	if item.ID != "vid123" {
		t.Errorf("ID = %q, want vid123", item.ID)
	}
	if item.Title != "" || item.Duration != "" || item.ViewCount != "" {
		t.Errorf("expected empty fields for nil blocks, got %+v", item)
	}
}

func TestRawVideoItemFullMapping(t *testing.T) {
	item := rawVideoItem(&yt.Video{
		Id: "vid456",
		Snippet: &yt.VideoSnippet{
			Title:       "A Video",
			Description: "about things",
			PublishedAt: "2024-03-01T12:00:00Z",
		},
		ContentDetails: &yt.VideoContentDetails{Duration: "PT5M"},
		Statistics: &yt.VideoStatistics{
			ViewCount:    1000,
			LikeCount:    50,
			CommentCount: 7,
		},
	})

	if item.Title != "A Video" || item.PublishedAt != "2024-03-01T12:00:00Z" {
		t.Errorf("snippet mapping wrong: %+v", item)
	}
	if item.Duration != "PT5M" {
		t.Errorf("Duration = %q, want PT5M", item.Duration)
	}
	if item.ViewCount != "1000" || item.LikeCount != "50" || item.CommentCount != "7" {
		t.Errorf("counts not formatted as strings: %+v", item)
	}
}

func TestChannelInfoHiddenSubscribers(t *testing.T) {
	visible := channelInfo(&yt.Channel{
		Id:      "UC1",
		Snippet: &yt.ChannelSnippet{Title: "Visible"},
		Statistics: &yt.ChannelStatistics{
			SubscriberCount:       1200,
			ViewCount:             99999,
			HiddenSubscriberCount: false,
		},
	})
	if visible.Subscribers == nil || *visible.Subscribers != 1200 {
		t.Errorf("visible subscribers not mapped: %+v", visible.Subscribers)
	}
	if visible.TotalViews != 99999 {
		t.Errorf("TotalViews = %d, want 99999", visible.TotalViews)
	}

	hidden := channelInfo(&yt.Channel{
		Id: "UC2",
		Statistics: &yt.ChannelStatistics{
			SubscriberCount:       1200,
			HiddenSubscriberCount: true,
		},
	})
	if hidden.Subscribers != nil {
		t.Errorf("hidden subscriber count should map to nil, got %d", *hidden.Subscribers)
	}
}

func TestChannelInfoUploadsPlaylist(t *testing.T) {
	info := channelInfo(&yt.Channel{
		Id: "UC3",
		ContentDetails: &yt.ChannelContentDetails{
			RelatedPlaylists: &yt.ChannelContentDetailsRelatedPlaylists{
				Uploads: "UU3",
			},
		},
	})
	if info.UploadsPlaylist != "UU3" {
		t.Errorf("UploadsPlaylist = %q, want UU3", info.UploadsPlaylist)
	}
}
