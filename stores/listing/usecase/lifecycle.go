package usecase

import (
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/datauri"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/metrics"
	"github.com/Beat1ngHeart/Custom-NFT/base/nftmetadata"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
)

var timeNow = time.Now

type LifecycleCfg struct {
	Store listing.Store
	// Pinning is nil when no pinning service is configured, listings are then stored inline
	Pinning  domain.PinningClient
	Notifier domain.Notifier
}

type lifecycleImpl struct {
	store    listing.Store
	pinning  domain.PinningClient
	notifier domain.Notifier
	met      metrics.Service
}

func NewLifecycle(cfg *LifecycleCfg) listing.UseCase {
	return &lifecycleImpl{
		store:    cfg.Store,
		pinning:  cfg.Pinning,
		notifier: cfg.Notifier,
		met:      metrics.New("listing"),
	}
}

func (im *lifecycleImpl) CreateListing(c ctx.Ctx, params listing.CreateParams) (*listing.Listing, error) {
	defer im.met.BumpTime("create.time").End()

	if !params.Price.IsPositive() {
		return nil, domain.NewValidationError("price must be greater than zero")
	}
	if len(params.Asset) == 0 {
		return nil, domain.NewValidationError("asset is required")
	}
	mtype := mimetype.Detect(params.Asset)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, domain.NewValidationError("unsupported asset type " + mtype.String())
	}

	l := &listing.Listing{
		Id:        listing.Id(uuid.NewString()),
		Name:      params.Name,
		Price:     params.Price,
		CreatedAt: timeNow().UTC(),
	}
	c = ctx.WithValue(c, "listingId", l.Id)

	pinning := im.pinning
	if pinning != nil && params.Pin {
		im.pin(c, pinning, l, params, mtype)
	}
	if l.Asset.IsEmpty() {
		l.Asset = listing.NewInlineAsset(datauri.Encode(params.Asset))
	}

	if err := im.store.Create(c, l); err != nil {
		c.WithField("err", err).Error("store.Create failed")
		return nil, err
	}
	im.met.BumpSum("create", 1, "pinned", boolTag(l.Asset.IsPinned()), "mintable", boolTag(l.Mintable()))
	return l, nil
}

// pin uploads the asset and then its metadata. Failures are recoverable, l
// keeps whatever was pinned before the failing step.
func (im *lifecycleImpl) pin(c ctx.Ctx, pinning domain.PinningClient, l *listing.Listing, params listing.CreateParams, mtype *mimetype.MIME) {
	assetRef, err := pinning.UploadBytes(c, params.Asset, strings.TrimPrefix(mtype.Extension(), "."))
	if err != nil {
		pErr := domain.NewPipelineError(domain.ErrPinning, "upload asset", err)
		im.met.BumpSum("create.pinning.err", 1, "stage", "asset")
		c.WithField("err", pErr).Warn("pinning.UploadBytes failed, store the asset inline")
		return
	}
	l.Asset = listing.NewPinnedAsset(*assetRef)

	doc := nftmetadata.Build(params.Name, params.Description, params.Attributes, assetRef.Cid)
	metadataRef, err := pinning.UploadJson(c, doc.Name, doc)
	if err != nil {
		pErr := domain.NewPipelineError(domain.ErrPinning, "upload metadata", err)
		im.met.BumpSum("create.pinning.err", 1, "stage", "metadata")
		c.WithFields(log.Fields{"err": pErr, "assetCid": assetRef.Cid}).Warn("pinning.UploadJson failed, listing is not mintable")
		return
	}
	l.Metadata = metadataRef
}

func (im *lifecycleImpl) RemoveListing(c ctx.Ctx, id listing.Id) error {
	removed, err := im.store.Remove(c, id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": id}).Error("store.Remove failed")
		return err
	}
	if removed == nil {
		c.WithField("listingId", id).Info("listing already removed")
		return nil
	}

	im.met.BumpSum("sold", 1)
	if im.notifier != nil {
		im.notifier.Announce(c, saleAnnouncement(removed))
	}
	return nil
}

func (im *lifecycleImpl) GetListing(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	return im.store.Get(c, id)
}

func (im *lifecycleImpl) List(c ctx.Ctx) ([]*listing.Listing, error) {
	return im.store.List(c)
}

func saleAnnouncement(l *listing.Listing) *domain.Announcement {
	name := l.Name
	if len(name) == 0 {
		name = nftmetadata.DefaultName
	}
	a := &domain.Announcement{
		Title:       name + " sold",
		Description: "Listing " + string(l.Id) + " was purchased",
		Fields: []domain.AnnouncementField{
			{Name: "Price", Value: l.Price.String()},
		},
	}
	// inline images are too large for an embed
	if l.Asset.IsPinned() {
		a.ImageUrl = l.Asset.Url()
	}
	return a
}

func boolTag(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
