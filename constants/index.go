package constants

// Account roles
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_CASHIER = "CASHIER"
	ROLE_KITCHEN = "KITCHEN"
	ROLE_WAITER  = "WAITER"
)

var ROLES = []string{ROLE_ADMIN, ROLE_MANAGER, ROLE_CASHIER, ROLE_KITCHEN, ROLE_WAITER}

// Provider types
const (
	PROVIDER_RESTAURANT = "restaurant"
	PROVIDER_SUPPLIER   = "supplier"
)

// Order status, forward progression only
const (
	ORDER_PENDING   = "pending"
	ORDER_COOKING   = "cooking"
	ORDER_READY     = "ready"
	ORDER_DELIVERED = "delivered"
)

var ORDER_STATUSES = []string{ORDER_PENDING, ORDER_COOKING, ORDER_READY, ORDER_DELIVERED}

// Payment methods
const (
	PAYMENT_PENDING = "pending"
	PAYMENT_CASH    = "cash"
	PAYMENT_CARD    = "card"
)

var PAYMENT_METHODS = []string{PAYMENT_PENDING, PAYMENT_CASH, PAYMENT_CARD}

// Table status
const (
	TABLE_AVAILABLE = "available"
	TABLE_OCCUPIED  = "occupied"
	TABLE_RESERVED  = "reserved"
	TABLE_CLEANING  = "cleaning"
	TABLE_BILL      = "bill"
)

var TABLE_STATUSES = []string{TABLE_AVAILABLE, TABLE_OCCUPIED, TABLE_RESERVED, TABLE_CLEANING, TABLE_BILL}

// Floor actions applied to tables
const (
	ACTION_OCCUPY    = "occupy"
	ACTION_RESERVE   = "reserve"
	ACTION_BILL      = "bill"
	ACTION_PAY       = "pay"
	ACTION_FREE      = "free"
	ACTION_CANCEL    = "cancel"
	ACTION_AVAILABLE = "available"
)

// Kitchen item status
const (
	KITCHEN_PENDING = "pending"
	KITCHEN_COOKING = "cooking"
	KITCHEN_READY   = "ready"
)

var KITCHEN_STATUSES = []string{KITCHEN_PENDING, KITCHEN_COOKING, KITCHEN_READY}

// Kitchen ticket priority, set at creation and never derived
const (
	PRIORITY_NORMAL = "normal"
	PRIORITY_HIGH   = "high"
)

// Transaction status (marketplace purchases)
const (
	TRANSACTION_PENDING   = "pending"
	TRANSACTION_PAID      = "paid"
	TRANSACTION_CANCELLED = "cancelled"
)

// User-facing messages
const (
	ERROR_INTERNAL_ERROR       = "Something went wrong, please try again"
	ERROR_INPUT                = "Invalid input"
	ERROR_CREATE               = "Create failed"
	ERROR_EDIT                 = "Update failed"
	ERROR_DELETE               = "Delete failed"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_USERNAME           = "Username does not exist"
	INVALID_PASSWORD           = "Wrong password"
	ACCOUNT_NOT_ACTIVE         = "Account is deactivated"
	NOT_ADMIN                  = "You do not have permission to do this"
	USERNAME_EXISTS            = "Username already exists"
	IDENTITY_CARD_EXISTS       = "Identity document already registered"
	ORDER_NOT_FOUND            = "Order not found"
	TABLE_NOT_FOUND            = "Table not found"
	INVALID_TRANSITION         = "Action is not allowed from the current status"
)
