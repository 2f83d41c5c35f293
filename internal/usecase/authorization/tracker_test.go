package authorization_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/authorization"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/criteria"
)

type mockFaceRepository struct {
	faces map[string]*domain.FaceRequest
}

func newMockFaceRepository(faces ...*domain.FaceRequest) *mockFaceRepository {
	repo := &mockFaceRepository{faces: make(map[string]*domain.FaceRequest)}
	for _, face := range faces {
		repo.faces[face.ID] = face
	}
	return repo
}

func (m *mockFaceRepository) GetFaceByID(faceID string) (*domain.FaceRequest, error) {
	if face, ok := m.faces[faceID]; ok {
		return face, nil
	}
	return nil, domain.NewNotFoundError("face", faceID)
}

func (m *mockFaceRepository) GetFacesByProposalID(proposalID string) ([]*domain.FaceRequest, error) {
	var result []*domain.FaceRequest
	for _, face := range m.faces {
		if face.ProposalID == proposalID {
			result = append(result, face)
		}
	}
	return result, nil
}

func (m *mockFaceRepository) UpdateTrackStatuses(proposalID string, track domain.Track, from, to domain.TrackStatus, reason string) (int64, error) {
	var count int64
	for _, face := range m.faces {
		if face.ProposalID != proposalID || face.TrackStatus(track) != from {
			continue
		}
		if track == domain.TrackDCM {
			face.DCMStatus = to
			if reason != "" {
				face.DCMReason = reason
			}
		} else {
			face.DGStatus = to
			if reason != "" {
				face.DGReason = reason
			}
		}
		count++
	}
	return count, nil
}

func (m *mockFaceRepository) SaveVerdict(faceID string, dg, dcm domain.TrackStatus, dgReason, dcmReason string) error {
	face, ok := m.faces[faceID]
	if !ok {
		return domain.NewNotFoundError("face", faceID)
	}
	face.DGStatus = dg
	face.DCMStatus = dcm
	face.DGReason = dgReason
	face.DCMReason = dcmReason
	return nil
}

type mockProposalRepository struct {
	missing map[string]bool
}

func (m *mockProposalRepository) GetProposalByID(proposalID string) (*domain.Proposal, error) {
	if m.missing[proposalID] {
		return nil, domain.NewNotFoundError("proposal", proposalID)
	}
	return &domain.Proposal{ID: proposalID}, nil
}

type mockTaskRepository struct {
	tasks []*domain.ApprovalTask
}

func (m *mockTaskRepository) CreateTask(task *domain.ApprovalTask) error {
	m.tasks = append(m.tasks, task)
	return nil
}

func (m *mockTaskRepository) FindOpenTasks(proposalID string) ([]*domain.ApprovalTask, error) {
	var open []*domain.ApprovalTask
	for _, task := range m.tasks {
		if task.ProposalID == proposalID && !task.Resolved() {
			open = append(open, task)
		}
	}
	return open, nil
}

func (m *mockTaskRepository) ResolveTask(proposalID string, track domain.Track) error {
	now := time.Now()
	for _, task := range m.tasks {
		if task.ProposalID == proposalID && task.Track == track && !task.Resolved() {
			task.ResolvedAt = &now
		}
	}
	return nil
}

func (m *mockTaskRepository) ResolveAllTasks(proposalID string) error {
	now := time.Now()
	for _, task := range m.tasks {
		if task.ProposalID == proposalID && !task.Resolved() {
			task.ResolvedAt = &now
		}
	}
	return nil
}

type stubPublisher struct {
	required []domain.AuthorizationRequiredEvent
	approved []domain.AuthorizationApprovedEvent
	rejected []domain.AuthorizationRejectedEvent
	created  []domain.ReservationCreatedEvent
	deleted  []domain.ReservationDeletedEvent
	progress []domain.AllocationProgressEvent
}

func (s *stubPublisher) PublishAuthorizationRequired(e domain.AuthorizationRequiredEvent) error {
	s.required = append(s.required, e)
	return nil
}

func (s *stubPublisher) PublishAuthorizationApproved(e domain.AuthorizationApprovedEvent) error {
	s.approved = append(s.approved, e)
	return nil
}

func (s *stubPublisher) PublishAuthorizationRejected(e domain.AuthorizationRejectedEvent) error {
	s.rejected = append(s.rejected, e)
	return nil
}

func (s *stubPublisher) PublishReservationCreated(e domain.ReservationCreatedEvent) error {
	s.created = append(s.created, e)
	return nil
}

func (s *stubPublisher) PublishReservationDeleted(e domain.ReservationDeletedEvent) error {
	s.deleted = append(s.deleted, e)
	return nil
}

func (s *stubPublisher) PublishAllocationProgress(e domain.AllocationProgressEvent) error {
	s.progress = append(s.progress, e)
	return nil
}

type stubEvaluator struct {
	verdict *criteria.Verdict
}

func (s *stubEvaluator) Evaluate(terms criteria.FaceTerms) (*criteria.Verdict, error) {
	return s.verdict, nil
}

func face(id, proposalID string, dg, dcm domain.TrackStatus) *domain.FaceRequest {
	return &domain.FaceRequest{
		ID:         id,
		ProposalID: proposalID,
		Format:     domain.FormatBillboard,
		Faces:      4,
		Cost:       10000,
		DGStatus:   dg,
		DCMStatus:  dcm,
	}
}

func newTracker(faceRepo *mockFaceRepository, taskRepo *mockTaskRepository, publisher *stubPublisher) *authorization.DefaultAuthorizationUsecase {
	return authorization.NewDefaultAuthorizationUsecase(faceRepo, taskRepo, &mockProposalRepository{}, &stubEvaluator{}, publisher, nil, nil)
}

func TestCheckPending(t *testing.T) {
	faceRepo := newMockFaceRepository(
		face("f1", "p1", domain.StatusPending, domain.StatusApproved),
		face("f2", "p1", domain.StatusApproved, domain.StatusPending),
		face("f3", "p1", domain.StatusApproved, domain.StatusApproved),
		face("f4", "p2", domain.StatusPending, domain.StatusPending),
	)
	tracker := newTracker(faceRepo, &mockTaskRepository{}, &stubPublisher{})

	out, err := tracker.CheckPending("p1")
	require.NoError(t, err)
	assert.True(t, out.HasPending)
	assert.ElementsMatch(t, []string{"f1"}, out.PendingDG)
	assert.ElementsMatch(t, []string{"f2"}, out.PendingDCM)

	out, err = tracker.CheckPending("p3")
	require.NoError(t, err)
	assert.False(t, out.HasPending)
}

func TestApproveOnlyTouchesOneTrack(t *testing.T) {
	faceRepo := newMockFaceRepository(
		face("f1", "p1", domain.StatusPending, domain.StatusPending),
		face("f2", "p1", domain.StatusPending, domain.StatusApproved),
	)
	publisher := &stubPublisher{}
	tracker := newTracker(faceRepo, &mockTaskRepository{}, publisher)

	count, err := tracker.Approve("p1", domain.TrackDG)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	out, err := tracker.CheckPending("p1")
	require.NoError(t, err)
	assert.Empty(t, out.PendingDG)
	assert.ElementsMatch(t, []string{"f1"}, out.PendingDCM)

	require.Len(t, publisher.approved, 1)
	assert.Equal(t, domain.TrackDG, publisher.approved[0].Track)
	assert.Equal(t, int64(2), publisher.approved[0].Count)
}

func TestApproveWithNothingPending(t *testing.T) {
	faceRepo := newMockFaceRepository(face("f1", "p1", domain.StatusApproved, domain.StatusApproved))
	tracker := newTracker(faceRepo, &mockTaskRepository{}, &stubPublisher{})

	_, err := tracker.Approve("p1", domain.TrackDG)
	assert.True(t, domain.IsState(err))
}

func TestApproveResolvesTasks(t *testing.T) {
	faceRepo := newMockFaceRepository(face("f1", "p1", domain.StatusPending, domain.StatusPending))
	taskRepo := &mockTaskRepository{tasks: []*domain.ApprovalTask{
		{ID: "t1", ProposalID: "p1", Track: domain.TrackDG},
		{ID: "t2", ProposalID: "p1", Track: domain.TrackDCM},
	}}
	tracker := newTracker(faceRepo, taskRepo, &stubPublisher{})

	// DCM still pending, so only the DG task resolves.
	_, err := tracker.Approve("p1", domain.TrackDG)
	require.NoError(t, err)
	assert.True(t, taskRepo.tasks[0].Resolved())
	assert.False(t, taskRepo.tasks[1].Resolved())

	// Nothing pending after this one, every remaining task resolves.
	_, err = tracker.Approve("p1", domain.TrackDCM)
	require.NoError(t, err)
	assert.True(t, taskRepo.tasks[1].Resolved())
}

func TestRejectRecordsReasonAndKeepsOtherTrack(t *testing.T) {
	faceRepo := newMockFaceRepository(face("f1", "p1", domain.StatusPending, domain.StatusPending))
	taskRepo := &mockTaskRepository{tasks: []*domain.ApprovalTask{
		{ID: "t1", ProposalID: "p1", Track: domain.TrackDG},
		{ID: "t2", ProposalID: "p1", Track: domain.TrackDCM},
	}}
	publisher := &stubPublisher{}
	tracker := newTracker(faceRepo, taskRepo, publisher)

	err := tracker.Reject("p1", domain.TrackDG, "margin too thin")
	require.NoError(t, err)

	f := faceRepo.faces["f1"]
	assert.Equal(t, domain.StatusRejected, f.DGStatus)
	assert.Equal(t, "margin too thin", f.DGReason)
	assert.Equal(t, domain.StatusPending, f.DCMStatus)

	assert.True(t, taskRepo.tasks[0].Resolved())
	assert.False(t, taskRepo.tasks[1].Resolved())

	require.Len(t, publisher.rejected, 1)
	assert.Equal(t, "margin too thin", publisher.rejected[0].Reason)
}

func TestRejectRequiresReason(t *testing.T) {
	faceRepo := newMockFaceRepository(face("f1", "p1", domain.StatusPending, domain.StatusApproved))
	tracker := newTracker(faceRepo, &mockTaskRepository{}, &stubPublisher{})

	err := tracker.Reject("p1", domain.TrackDG, "")
	assert.True(t, domain.IsValidation(err))
}

func TestSummarize(t *testing.T) {
	faceRepo := newMockFaceRepository(
		face("f1", "p1", domain.StatusApproved, domain.StatusApproved),
		face("f2", "p1", domain.StatusPending, domain.StatusApproved),
		face("f3", "p1", domain.StatusApproved, domain.StatusPending),
		face("f4", "p1", domain.StatusRejected, domain.StatusApproved),
	)
	tracker := newTracker(faceRepo, &mockTaskRepository{}, &stubPublisher{})

	summary, err := tracker.Summarize("p1")
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.FullyApproved)
	assert.Equal(t, 1, summary.PendingDG)
	assert.Equal(t, 1, summary.PendingDCM)
	assert.Equal(t, 1, summary.Rejected)
	assert.False(t, summary.CanProceed)
}

func TestSummarizeCanProceed(t *testing.T) {
	faceRepo := newMockFaceRepository(
		face("f1", "p1", domain.StatusApproved, domain.StatusApproved),
		face("f2", "p1", domain.StatusApproved, domain.StatusApproved),
	)
	tracker := newTracker(faceRepo, &mockTaskRepository{}, &stubPublisher{})

	summary, err := tracker.Summarize("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.FullyApproved)
	assert.True(t, summary.CanProceed)
}

func TestGateActivation(t *testing.T) {
	faceRepo := newMockFaceRepository(
		face("f1", "p1", domain.StatusPending, domain.StatusApproved),
		face("f2", "p2", domain.StatusApproved, domain.StatusApproved),
	)
	tracker := newTracker(faceRepo, &mockTaskRepository{}, &stubPublisher{})

	err := tracker.GateActivation("p1")
	assert.True(t, domain.IsState(err))

	assert.NoError(t, tracker.GateActivation("p2"))
}

func TestGateActivationUnknownProposal(t *testing.T) {
	faceRepo := newMockFaceRepository()
	tracker := authorization.NewDefaultAuthorizationUsecase(
		faceRepo,
		&mockTaskRepository{},
		&mockProposalRepository{missing: map[string]bool{"ghost": true}},
		&stubEvaluator{},
		&stubPublisher{},
		nil,
		nil,
	)

	err := tracker.GateActivation("ghost")
	assert.True(t, domain.IsNotFound(err))
}

func TestReevaluateOverwritesBothTracks(t *testing.T) {
	faceRepo := newMockFaceRepository(face("f1", "p1", domain.StatusApproved, domain.StatusApproved))
	taskRepo := &mockTaskRepository{}
	publisher := &stubPublisher{}
	tracker := authorization.NewDefaultAuthorizationUsecase(
		faceRepo,
		taskRepo,
		&mockProposalRepository{},
		&stubEvaluator{verdict: &criteria.Verdict{
			DGStatus:  domain.StatusPending,
			DCMStatus: domain.StatusApproved,
			DGReason:  "face count 4 at or below DG limit",
		}},
		publisher,
		nil,
		nil,
	)

	verdict, err := tracker.Reevaluate("f1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, verdict.DGStatus)

	f := faceRepo.faces["f1"]
	assert.Equal(t, domain.StatusPending, f.DGStatus)
	assert.Equal(t, domain.StatusApproved, f.DCMStatus)

	require.Len(t, taskRepo.tasks, 1)
	assert.Equal(t, domain.TrackDG, taskRepo.tasks[0].Track)
	require.Len(t, publisher.required, 1)
	assert.Equal(t, []string{"f1"}, publisher.required[0].FaceIDs)

	// A second evaluation with the same outcome does not duplicate the task.
	_, err = tracker.Reevaluate("f1")
	require.NoError(t, err)
	assert.Len(t, taskRepo.tasks, 1)
}

func TestReevaluateClearsStaleTask(t *testing.T) {
	faceRepo := newMockFaceRepository(face("f1", "p1", domain.StatusApproved, domain.StatusApproved))
	taskRepo := &mockTaskRepository{}
	evaluator := &stubEvaluator{verdict: &criteria.Verdict{
		DGStatus:  domain.StatusPending,
		DCMStatus: domain.StatusApproved,
		DGReason:  "face count 4 at or below DG limit",
	}}
	tracker := authorization.NewDefaultAuthorizationUsecase(
		faceRepo,
		taskRepo,
		&mockProposalRepository{},
		evaluator,
		&stubPublisher{},
		nil,
		nil,
	)

	_, err := tracker.Reevaluate("f1")
	require.NoError(t, err)
	require.Len(t, taskRepo.tasks, 1)
	assert.False(t, taskRepo.tasks[0].Resolved())

	// The terms were edited; the new verdict is clean on both tracks, so the
	// task opened by the first evaluation has nothing left behind it.
	evaluator.verdict = &criteria.Verdict{
		DGStatus:  domain.StatusApproved,
		DCMStatus: domain.StatusApproved,
	}
	_, err = tracker.Reevaluate("f1")
	require.NoError(t, err)
	assert.True(t, taskRepo.tasks[0].Resolved())

	out, err := tracker.CheckPending("p1")
	require.NoError(t, err)
	assert.False(t, out.HasPending)
}

func TestReevaluateUnknownFace(t *testing.T) {
	tracker := newTracker(newMockFaceRepository(), &mockTaskRepository{}, &stubPublisher{})

	_, err := tracker.Reevaluate("missing")
	assert.True(t, domain.IsNotFound(err))
}
