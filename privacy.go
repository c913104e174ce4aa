// privacy.go - visitor identifiers never reach the logs in the clear
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/gin-gonic/gin"
)

var hashingSalt string

// Initialize the per-process salt used for IP hashing
func initPrivacy() {
	hashingSalt = generateToken()
	log.Println("Privacy: client IPs are hashed before logging")
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate salt:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address for privacy compliance (consistent per IP within a process)
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Respect Do Not Track: the contact handler skips forwarding the client IP
// to the verification service when it is set.
func doNotTrackMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("dnt", c.GetHeader("DNT") == "1")
		c.Next()
	}
}

func doNotTrack(c *gin.Context) bool {
	return c.GetBool("dnt")
}
