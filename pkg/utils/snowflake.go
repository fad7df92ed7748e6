package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch          = int64(1577836800000) // 起始时间戳 (2020-01-01)
	workerIDBits   = uint(10)
	sequenceBits   = uint(12)
	maxWorkerID    = int64(-1 ^ (-1 << workerIDBits))
	maxSequence    = int64(-1 ^ (-1 << sequenceBits))
	timestampShift = sequenceBits + workerIDBits
	workerIDShift  = sequenceBits
)

// Snowflake 雪花算法ID生成器 全库实体ID统一由它分配
type Snowflake struct {
	mutex    sync.Mutex
	lastTime int64
	workerID int64
	sequence int64
}

func NewSnowflake(workerID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	return &Snowflake{workerID: workerID}, nil
}

// GenerateID 生成唯一ID
func (s *Snowflake) GenerateID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	currentTime := time.Now().UnixMilli()
	if currentTime < s.lastTime {
		// 时钟回拨，等待
		time.Sleep(time.Duration(s.lastTime-currentTime) * time.Millisecond)
		currentTime = time.Now().UnixMilli()
	}

	if currentTime == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			// 序列号用完，等待下一毫秒
			for currentTime <= s.lastTime {
				currentTime = time.Now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTime = currentTime
	return ((currentTime - epoch) << timestampShift) |
		(s.workerID << workerIDShift) |
		s.sequence
}

// GlobalSnowflake 全局雪花算法实例
var GlobalSnowflake *Snowflake

func InitSnowflake(workerID int64) error {
	var err error
	GlobalSnowflake, err = NewSnowflake(workerID)
	return err
}

// GenerateID 生成实体ID
func GenerateID() int64 {
	if GlobalSnowflake == nil {
		_ = InitSnowflake(1)
	}
	return GlobalSnowflake.GenerateID()
}
