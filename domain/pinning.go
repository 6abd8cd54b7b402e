package domain

import (
	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

// PinningClient uploads content to a content addressed network
type PinningClient interface {
	// UploadBytes pins payload, ext is the file extension without dot (e.g. "png")
	UploadBytes(c ctx.Ctx, payload []byte, ext string) (*ContentRef, error)
	// UploadJson pins the json encoding of doc under the given display name
	UploadJson(c ctx.Ctx, name string, doc interface{}) (*ContentRef, error)
}
