package repository

import (
	"context"
	"fmt"

	"salon_api/internal/domain/entities"
	"salon_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type employeeItem struct {
	ID     int64 `dynamodbav:"id"`
	RoleID int64 `dynamodbav:"role_id"`
}

type serviceItem struct {
	ID int64 `dynamodbav:"id"`
}

type appointmentItem struct {
	ID       int64  `dynamodbav:"id"`
	ClientID int64  `dynamodbav:"client_id"`
	Date     string `dynamodbav:"date"`
}

// ReferenceDirectoryDynamoRepository reads the employee, service and
// appointment tables owned by the rest of the salon backend. All three use a
// numeric id as PK.
type ReferenceDirectoryDynamoRepository struct {
	ddb               dynamoAPI
	employeesTable    string
	servicesTable     string
	appointmentsTable string
}

var _ interfaces.IReferenceDirectory = (*ReferenceDirectoryDynamoRepository)(nil)

func NewReferenceDirectoryDynamoRepository(ddb dynamoAPI, employeesTable, servicesTable, appointmentsTable string) *ReferenceDirectoryDynamoRepository {
	return &ReferenceDirectoryDynamoRepository{
		ddb:               ddb,
		employeesTable:    employeesTable,
		servicesTable:     servicesTable,
		appointmentsTable: appointmentsTable,
	}
}

func (r *ReferenceDirectoryDynamoRepository) GetEmployee(ctx context.Context, id int64) (entities.Employee, error) {
	var it employeeItem
	found, err := r.get(ctx, r.employeesTable, id, &it)
	if err != nil || !found {
		return entities.Employee{}, err
	}
	return entities.Employee{ID: it.ID, RoleID: it.RoleID}, nil
}

func (r *ReferenceDirectoryDynamoRepository) GetService(ctx context.Context, id int64) (entities.Service, error) {
	var it serviceItem
	found, err := r.get(ctx, r.servicesTable, id, &it)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return entities.Service{ID: it.ID}, nil
}

func (r *ReferenceDirectoryDynamoRepository) GetAppointment(ctx context.Context, id int64) (entities.Appointment, error) {
	var it appointmentItem
	found, err := r.get(ctx, r.appointmentsTable, id, &it)
	if err != nil || !found {
		return entities.Appointment{}, err
	}
	date, err := parseDate(it.Date)
	if err != nil {
		return entities.Appointment{}, fmt.Errorf("appointment %d: %w", id, err)
	}
	return entities.Appointment{ID: it.ID, ClientID: it.ClientID, Date: date}, nil
}

func (r *ReferenceDirectoryDynamoRepository) get(ctx context.Context, table string, id int64, dst interface{}) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": numberAttr(id),
		},
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, dst); err != nil {
		return false, err
	}
	return true, nil
}
