package appointments

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/normalize"
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

type appointmentBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewAppointmentBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.AppointmentBackendClient {
	return &appointmentBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *appointmentBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.Appointment, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        constvars.EndpointAppointments,
		Query:       query,
		AccessToken: accessToken,
		Resource:    constvars.ResourceAppointments,
	})
	if err != nil {
		return nil, err
	}

	appointments, err := c.Normalizer.Appointments(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointments)
	}
	return appointments, nil
}

func (c *appointmentBackendClient) FindAvailableSlots(ctx context.Context, accessToken string, query *requests.AvailabilityQuery) ([]responses.TimeSlot, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        constvars.EndpointAvailableTimeSlots,
		Query:       query.Values(),
		AccessToken: accessToken,
		Resource:    constvars.ResourceTimeSlots,
	})
	if err != nil {
		return nil, err
	}

	slots, err := c.Normalizer.TimeSlots(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTimeSlots)
	}
	return slots, nil
}

// Create books the appointment. The booking has happened once the backend
// answers 2xx, so a created record the portal cannot normalize is logged and
// reported with its id only.
func (c *appointmentBackendClient) Create(ctx context.Context, accessToken string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        constvars.EndpointAppointments,
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceAppointments,
	})
	if err != nil {
		return nil, err
	}

	record, err := normalize.Object(body)
	if err != nil {
		return &responses.Appointment{Slot: responses.TimeSlot{ID: request.TimeSlot}}, nil
	}
	appointment, err := c.Normalizer.Appointment(record)
	if err != nil {
		c.Client.Log.Warn("appointmentBackendClient.Create could not normalize created appointment", zap.Error(err))
		return &responses.Appointment{
			ID:         record.Get("id").String(),
			PatientID:  request.PatientID,
			ProviderID: request.ProviderID,
			Slot:       responses.TimeSlot{ID: request.TimeSlot},
			Status:     constvars.AppointmentStatusScheduled,
		}, nil
	}
	return &appointment, nil
}

func (c *appointmentBackendClient) Cancel(ctx context.Context, accessToken, appointmentID string, request *requests.CancelAppointment) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        fmt.Sprintf(constvars.EndpointAppointmentCancelFormat, url.PathEscape(appointmentID)),
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceAppointments,
	})
	return err
}

func (c *appointmentBackendClient) CheckIn(ctx context.Context, accessToken, appointmentID string) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        fmt.Sprintf(constvars.EndpointAppointmentCheckInFormat, url.PathEscape(appointmentID)),
		AccessToken: accessToken,
		Resource:    constvars.ResourceAppointments,
	})
	return err
}

func (c *appointmentBackendClient) UpdateStatus(ctx context.Context, accessToken, appointmentID string, request *requests.UpdateAppointmentStatus) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPatch,
		Path:        fmt.Sprintf(constvars.EndpointAppointmentDetailFormat, url.PathEscape(appointmentID)),
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceAppointments,
	})
	return err
}

func (c *appointmentBackendClient) Complete(ctx context.Context, accessToken, appointmentID string) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        fmt.Sprintf(constvars.EndpointAppointmentCompleteFormat, url.PathEscape(appointmentID)),
		AccessToken: accessToken,
		Resource:    constvars.ResourceAppointments,
	})
	return err
}
