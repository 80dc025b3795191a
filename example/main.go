package main

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/homier/bucketmap"
)

func main() {
	m, err := bucketmap.New[any](4)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	log.Info("Testing insertion")

	key := ""
	for i := range 4 {
		key += "*"
		if err := m.Set(key, key); err != nil {
			log.Fatalf("Failed to insert key=%s: %v", key, err)
		}

		v, err := m.Get(key)
		if err != nil {
			log.Fatalf("Failed to read key=%s: %v", key, err)
		}
		log.Infof("Expected %d stars: %v", i+1, v)
	}

	log.Info("Testing override of an existing key")

	if err := m.Set(key, map[string]string{}); err != nil {
		log.Fatalf("Failed to override key=%s: %v", key, err)
	}
	v, _ := m.Get(key)
	log.Infof("Value of key=%s is now %T", key, v)

	log.Info("Testing fixed capacity")

	for _, k := range []string{key + "TEMP", key + "1"} {
		err := m.Set(k, map[string]int{})
		if errors.Is(err, bucketmap.ErrTableFull) {
			log.WithField("key", k).Infof("Insert rejected: %v", err)
			continue
		}
		log.Errorf("Insert of key=%s into a full map returned %v", k, err)
	}

	log.Info("Testing get of a missing key")

	if _, err := m.Get(key + "TEMP"); err != nil {
		log.WithField("key", key+"TEMP").Infof("Get failed: %v", err)
	}

	log.Infof("Current load: %.2f (expected 1.00)", m.Load())

	log.Info("Testing deletion")

	removed, err := m.Delete(key)
	if err != nil {
		log.Fatalf("Failed to delete key=%s: %v", key, err)
	}
	log.Infof("Just removed: %v", removed)
	log.Infof("Current load: %.2f", m.Load())

	for i := 3; i > 0; i-- {
		k := strings.Repeat("*", i)
		removed, err := m.Delete(k)
		if err != nil {
			log.Fatalf("Failed to delete key=%s: %v", k, err)
		}
		log.Infof("Expected %d stars: %v", i, removed)
		log.Infof("Current load: %.2f", m.Load())
	}

	log.Info("Testing deletion of a missing key")

	if _, err := m.Delete(key); errors.Is(err, bucketmap.ErrNotFound) {
		log.WithField("key", key).Infof("Delete failed: %v", err)
	}

	stats := m.Stats()
	log.WithFields(log.Fields{
		"size":          stats.Size,
		"capacity":      stats.Capacity,
		"used_slots":    stats.UsedSlots,
		"longest_chain": stats.LongestChain,
	}).Info("Final stats")
}
