package hub

import (
	"sync"

	"relay/internal/entities"
	"relay/pkg/logger"
)

const DefaultBufferSize = 64

type subscriptionSet map[uint64]*Subscription

type memberSet map[string]struct{}

// Hub - pub/sub внутри процесса. Каналы адресуются по id
// (entities.UserChannel / entities.DeliveryChannel). Членство в канале
// доставки хранится по пользователю: подключения, открытые позже,
// сразу получают все его доставки.
type Hub struct {
	log        hubLogger
	bufferSize int

	mu             sync.RWMutex
	nextID         uint64
	channels       map[string]subscriptionSet
	userSubs       map[string]subscriptionSet
	members        map[string]memberSet
	userDeliveries map[string]memberSet
	taps           []Tap
}

func New(log hubLogger, bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Hub{
		log:            log.With(logger.NewField("component", "hub")),
		bufferSize:     bufferSize,
		channels:       make(map[string]subscriptionSet),
		userSubs:       make(map[string]subscriptionSet),
		members:        make(map[string]memberSet),
		userDeliveries: make(map[string]memberSet),
	}
}

// AddTap регистрирует наблюдателя всех публикуемых событий.
func (h *Hub) AddTap(tap Tap) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.taps = append(h.taps, tap)
}

// Connect открывает подписку для userID.
func (h *Hub) Connect(userID string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		id:     h.nextID,
		userID: userID,
		hub:    h,
		ch:     make(chan entities.Event, h.bufferSize),
	}

	addSub(h.userSubs, userID, sub)
	addSub(h.channels, entities.UserChannel(userID), sub)
	for deliveryID := range h.userDeliveries[userID] {
		addSub(h.channels, entities.DeliveryChannel(deliveryID), sub)
	}

	ActiveSubscriptions.Inc()
	return sub
}

func (h *Hub) disconnect(sub *Subscription) {
	h.mu.Lock()
	if _, ok := h.userSubs[sub.userID][sub.id]; ok {
		removeSub(h.userSubs, sub.userID, sub.id)
		removeSub(h.channels, entities.UserChannel(sub.userID), sub.id)
		for deliveryID := range h.userDeliveries[sub.userID] {
			removeSub(h.channels, entities.DeliveryChannel(deliveryID), sub.id)
		}
		ActiveSubscriptions.Dec()
	}
	h.mu.Unlock()

	sub.close()
}

// Join добавляет userID в канал доставки.
func (h *Hub) Join(deliveryID, userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	addMember(h.members, deliveryID, userID)
	addMember(h.userDeliveries, userID, deliveryID)

	channelID := entities.DeliveryChannel(deliveryID)
	for _, sub := range h.userSubs[userID] {
		addSub(h.channels, channelID, sub)
	}
}

// Leave убирает userID из канала доставки.
func (h *Hub) Leave(deliveryID, userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(deliveryID, userID)
}

func (h *Hub) leaveLocked(deliveryID, userID string) {
	removeMember(h.members, deliveryID, userID)
	removeMember(h.userDeliveries, userID, deliveryID)

	channelID := entities.DeliveryChannel(deliveryID)
	for id := range h.userSubs[userID] {
		removeSub(h.channels, channelID, id)
	}
}

// CloseChannel удаляет всех участников канала доставки.
func (h *Hub) CloseChannel(deliveryID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID := range h.members[deliveryID] {
		h.leaveLocked(deliveryID, userID)
	}
	delete(h.channels, entities.DeliveryChannel(deliveryID))
}

func (h *Hub) IsMember(deliveryID, userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.members[deliveryID][userID]
	return ok
}

func (h *Hub) Members(deliveryID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := make([]string, 0, len(h.members[deliveryID]))
	for userID := range h.members[deliveryID] {
		members = append(members, userID)
	}
	return members
}

// Publish отправляет событие всем подписчикам event.ChannelID.
// Не блокируется: при полном буфере событие отбрасывается.
func (h *Hub) Publish(event entities.Event) {
	h.mu.RLock()
	subs := make([]*Subscription, 0, len(h.channels[event.ChannelID]))
	for _, sub := range h.channels[event.ChannelID] {
		subs = append(subs, sub)
	}
	taps := h.taps
	h.mu.RUnlock()

	EventsPublishedTotal.WithLabelValues(event.Type.String()).Inc()

	for _, sub := range subs {
		if !sub.deliver(event) {
			EventsDroppedTotal.WithLabelValues(event.Type.String()).Inc()
			h.log.Warn("subscriber buffer full, event dropped",
				logger.NewField("channel", event.ChannelID),
				logger.NewField("event", event.Type.String()),
				logger.NewField("user", sub.userID),
			)
		}
	}

	for _, tap := range taps {
		tap.Observe(event)
	}
}

func addSub(index map[string]subscriptionSet, key string, sub *Subscription) {
	set, ok := index[key]
	if !ok {
		set = make(subscriptionSet)
		index[key] = set
	}
	set[sub.id] = sub
}

func removeSub(index map[string]subscriptionSet, key string, id uint64) {
	set, ok := index[key]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(index, key)
	}
}

func addMember(index map[string]memberSet, key, value string) {
	set, ok := index[key]
	if !ok {
		set = make(memberSet)
		index[key] = set
	}
	set[value] = struct{}{}
}

func removeMember(index map[string]memberSet, key, value string) {
	set, ok := index[key]
	if !ok {
		return
	}
	delete(set, value)
	if len(set) == 0 {
		delete(index, key)
	}
}
