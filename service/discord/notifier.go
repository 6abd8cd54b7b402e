package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/viney-shih/goroutines"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

const scheduleTimeout = 3 * time.Second

type Config struct {
	BotKey    string
	ChannelId string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

// Notifier posts announcements as embeds into one channel. Sends run on a worker pool.
type Notifier struct {
	channelId  string
	sender     embedSender
	workerPool *goroutines.Pool
}

// NewNotifier returns a notifier that only logs when no bot key is configured
func NewNotifier(cfg Config) (*Notifier, error) {
	if len(cfg.BotKey) == 0 || len(cfg.ChannelId) == 0 {
		return newNotifier(cfg.ChannelId, nil), nil
	}
	session, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return newNotifier(cfg.ChannelId, session), nil
}

func newNotifier(channelId string, sender embedSender) *Notifier {
	return &Notifier{
		channelId:  channelId,
		sender:     sender,
		workerPool: goroutines.NewPool(4, goroutines.WithTaskQueueLength(256), goroutines.WithPreAllocWorkers(1)),
	}
}

func (n *Notifier) Announce(c ctx.Ctx, a *domain.Announcement) {
	if n.sender == nil {
		c.WithField("title", a.Title).Debug("discord not configured, skip announcement")
		return
	}

	msg := toEmbed(a)
	err := n.workerPool.ScheduleWithTimeout(scheduleTimeout, func() {
		if _, err := n.sender.ChannelMessageSendEmbed(n.channelId, msg); err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"title": a.Title,
			}).Warn("failed to ChannelMessageSendEmbed")
		}
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"title": a.Title,
		}).Warn("failed to workerPool.ScheduleWithTimeout")
	}
}

// Close waits for queued sends
func (n *Notifier) Close() {
	n.workerPool.Release()
}

func toEmbed(a *domain.Announcement) *discordgo.MessageEmbed {
	msg := &discordgo.MessageEmbed{
		Title:       a.Title,
		Description: a.Description,
	}
	if len(a.ImageUrl) > 0 {
		msg.Image = &discordgo.MessageEmbedImage{
			URL: a.ImageUrl,
		}
	}
	for _, f := range a.Fields {
		msg.Fields = append(msg.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value})
	}
	return msg
}
