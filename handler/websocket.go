package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"restaurant_manager/config"
	"restaurant_manager/model"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	chatConnections = make(map[uint]map[*websocket.Conn]bool)
	chatMutex       sync.Mutex
)

func RedisClient() *redis.Client {
	redisOnce.Do(func() {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

// ChatWebsocket keeps one chat room per provider. Messages go through Redis
// so other instances receive them too.
func ChatWebsocket(c *websocket.Conn) {
	providerIdStr := c.Params("providerId")
	id64, err := strconv.ParseUint(providerIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid providerId: %s", providerIdStr)
		c.Close()
		return
	}
	providerId := uint(id64)

	chatMutex.Lock()
	if chatConnections[providerId] == nil {
		chatConnections[providerId] = make(map[*websocket.Conn]bool)
	}
	chatConnections[providerId][c] = true
	chatMutex.Unlock()

	log.Printf("New chat connection for provider %d. Total connections: %d", providerId, len(chatConnections[providerId]))

	defer func() {
		chatMutex.Lock()
		delete(chatConnections[providerId], c)
		if len(chatConnections[providerId]) == 0 {
			delete(chatConnections, providerId)
		}
		chatMutex.Unlock()
		c.Close()
	}()

	pubsub := RedisClient().Subscribe(
		context.Background(),
		fmt.Sprintf("chat:%d", providerId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		chatMutex.Lock()
		for conn := range chatConnections[providerId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(chatConnections[providerId], conn)
			}
		}
		chatMutex.Unlock()
	}
}

// PublishChatMessage pushes a stored message onto the provider's Redis
// channel. clientRef rides along so the sending client recognizes its own
// message when it comes back.
func PublishChatMessage(providerId uint, message model.Message, clientRef string) {
	payload, err := json.Marshal(map[string]any{
		"type":      "chat",
		"message":   message,
		"clientRef": clientRef,
	})
	if err != nil {
		log.Printf("Error marshaling chat payload: %v", err)
		return
	}
	if err := RedisClient().Publish(
		context.Background(),
		fmt.Sprintf("chat:%d", providerId),
		payload,
	).Err(); err != nil {
		log.Printf("Error publishing chat message: %v", err)
	}
}

// PublishKitchenReady tells the clients in the room a ticket is ready.
func PublishKitchenReady(providerId uint, ticket model.KitchenOrder) {
	payload, err := json.Marshal(map[string]any{
		"type":   "kitchen_ready",
		"ticket": ticket,
	})
	if err != nil {
		log.Printf("Error marshaling kitchen payload: %v", err)
		return
	}
	if err := RedisClient().Publish(
		context.Background(),
		fmt.Sprintf("chat:%d", providerId),
		payload,
	).Err(); err != nil {
		log.Printf("Error publishing kitchen notification: %v", err)
	}
}
