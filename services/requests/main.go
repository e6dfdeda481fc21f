package requests

import (
	"sort"
	"sync"
	"time"

	"github.com/lithium3141/HaplotypeInference/models/phasing"

	"github.com/google/uuid"
)

type (
	// RequestService keeps the history of phasing requests made to the api
	RequestService struct {
		RequestMap    map[string]*phasing.PhasingRequest
		RequestMapMux sync.RWMutex
	}
)

func NewRequestService() *RequestService {
	return &RequestService{
		RequestMap:    map[string]*phasing.PhasingRequest{},
		RequestMapMux: sync.RWMutex{},
	}
}

func (rs *RequestService) Start(numGenotypes int) *phasing.PhasingRequest {
	now := time.Now()
	req := &phasing.PhasingRequest{
		Id:           uuid.New(),
		State:        phasing.Running,
		NumGenotypes: numGenotypes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	rs.RequestMapMux.Lock()
	rs.RequestMap[req.Id.String()] = req
	rs.RequestMapMux.Unlock()

	return req
}

// Finish records the outcome of a request; a nil err marks it successful
func (rs *RequestService) Finish(id uuid.UUID, numHaplotypes int, err error) {
	rs.RequestMapMux.Lock()
	defer rs.RequestMapMux.Unlock()

	req, ok := rs.RequestMap[id.String()]
	if !ok {
		return
	}

	if err != nil {
		req.State = phasing.Error
		req.Message = err.Error()
	} else {
		req.State = phasing.Success
		req.NumHaplotypes = numHaplotypes
	}
	req.UpdatedAt = time.Now()
}

// GetAll returns copies of every tracked request, oldest first
func (rs *RequestService) GetAll() []phasing.PhasingRequest {
	rs.RequestMapMux.RLock()
	defer rs.RequestMapMux.RUnlock()

	all := make([]phasing.PhasingRequest, 0, len(rs.RequestMap))
	for _, req := range rs.RequestMap {
		all = append(all, *req)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all
}

// PurgeFinishedBefore drops finished requests last updated before cutoff
// and returns how many were removed. Running requests are kept.
func (rs *RequestService) PurgeFinishedBefore(cutoff time.Time) int {
	rs.RequestMapMux.Lock()
	defer rs.RequestMapMux.Unlock()

	purged := 0
	for id, req := range rs.RequestMap {
		if req.IsFinished() && req.UpdatedAt.Before(cutoff) {
			delete(rs.RequestMap, id)
			purged++
		}
	}
	return purged
}
