package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVideoCreate(t *testing.T) {
	svc := &VideoService{Store: newTestStore(t)}
	ctx := context.Background()

	video, err := svc.Create(ctx, "Suwari waza", "https://videos.example.com/suwari.mp4", "Démonstration", true)
	require.NoError(t, err)
	require.True(t, video.Published)

	got, err := svc.Get(ctx, video.ID)
	require.NoError(t, err)
	require.Equal(t, "Suwari waza", got.Title)

	t.Run("invalid url", func(t *testing.T) {
		for _, raw := range []string{"", "not a url", "ftp://example.com/x", "https://"} {
			_, err := svc.Create(ctx, "Titre", raw, "", false)
			require.ErrorIs(t, err, ErrInvalidVideo)
		}
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := svc.Create(ctx, "  ", "https://videos.example.com/x.mp4", "", false)
		require.ErrorIs(t, err, ErrInvalidVideo)
	})
}

func TestVideoUpdate(t *testing.T) {
	svc := &VideoService{Store: newTestStore(t)}
	ctx := context.Background()

	video, err := svc.Create(ctx, "Ukemi", "https://videos.example.com/ukemi.mp4", "", false)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, video.ID, "Ukemi avant", "https://videos.example.com/ukemi-v2.mp4", "Nouvelle prise", true)
	require.NoError(t, err)
	require.Equal(t, "Ukemi avant", updated.Title)
	require.True(t, updated.Published)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", "X", "https://example.com/x", "", false)
		require.ErrorIs(t, err, ErrVideoNotFound)
	})
}

func TestVideoDelete(t *testing.T) {
	svc := &VideoService{Store: newTestStore(t)}
	ctx := context.Background()

	video, err := svc.Create(ctx, "Jo kata", "https://videos.example.com/jo.mp4", "", true)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, video.ID))
	_, err = svc.Get(ctx, video.ID)
	require.ErrorIs(t, err, ErrVideoNotFound)

	require.ErrorIs(t, svc.Delete(ctx, video.ID), ErrVideoNotFound)
}

func TestVideoList(t *testing.T) {
	svc := &VideoService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, "Un", "https://videos.example.com/1.mp4", "", true)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Deux", "https://videos.example.com/2.mp4", "", false)
	require.NoError(t, err)

	videos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
}
